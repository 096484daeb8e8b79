package history

// ========================================
// HISTORY DTOs
// ========================================

type EntryResponse struct {
	ID        string `json:"id"`
	Action    string `json:"action"`
	Timestamp string `json:"timestamp"`
}

type ListHistoryResponse struct {
	Entries []EntryResponse `json:"entries"`
}

func (e Entry) ToResponse() EntryResponse {
	return EntryResponse{
		ID:        e.ID,
		Action:    e.Action,
		Timestamp: e.Timestamp,
	}
}
