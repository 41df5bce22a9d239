package domain

// Caller visible failure messages; upstream bodies never reach the caller
const (
	MsgUpstreamAPI = "GitHub API returned an error. Check token and rate limits."
	MsgFetchFailed = "Failed to fetch data from GitHub."
	MsgUnknown     = "An unknown error occurred."
)
