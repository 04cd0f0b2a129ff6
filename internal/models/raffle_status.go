package models

import "time"

// RaffleStatus is the public view of the raffle returned by the API
type RaffleStatus struct {
	Phase           Phase          `json:"phase"`
	EntryFee        string         `json:"entryFee"`
	IntervalSeconds int64          `json:"intervalSeconds"`
	LastTriggerTime time.Time      `json:"lastTriggerTime"`
	NumberOfPlayers int            `json:"numberOfPlayers"`
	PoolBalance     string         `json:"poolBalance"`
	RecentWinner    string         `json:"recentWinner,omitempty"`
	PendingRequest  *RequestHandle `json:"pendingRequest,omitempty"`
	Round           uint64         `json:"round"`
	UpkeepNeeded    bool           `json:"upkeepNeeded"`
	Oracle          OracleConfig   `json:"oracle"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}
