package models

// TaskSummary je izvedeni pregled za dashboard - računa se pri svakom čitanju,
// nikada se ne čuva u bazi.
type TaskSummary struct {
	TotalAttended      int     `json:"totalAttended"`
	TotalPending       int     `json:"totalPending"`
	TotalInProgress    int     `json:"totalInProgress"`
	TotalCompleted     int     `json:"totalCompleted"`
	TotalEarned        float64 `json:"totalEarned"`
	TotalMoneyReceived float64 `json:"totalMoneyReceived"`
	TotalBalanceAmount float64 `json:"totalBalanceAmount"`
}
