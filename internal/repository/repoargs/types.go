package repoargs

type RepositoryName string

const (
	AccountUserRepoName RepositoryName = "account_user"
	AccountRepoName     RepositoryName = "account"
	TransactionRepoName RepositoryName = "transaction"
)
