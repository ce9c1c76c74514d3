package repoargs

type RepositoryName string

const (
	AccountRepoName        RepositoryName = "account"
	TransactionRepoName    RepositoryName = "transaction"
	PlanRepoName           RepositoryName = "plan"
	HoldingRepoName        RepositoryName = "holding"
	CommissionRepoName     RepositoryName = "commission"
	ReferralConfigRepoName RepositoryName = "referral_config"
)
