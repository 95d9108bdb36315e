package httpapi

import (
	"time"

	"github.com/safar/go-store-assistant/internal/assistant"
	"github.com/safar/go-store-assistant/internal/models"
)

// OffsetPage is the standard paginated list envelope.
type OffsetPage struct {
	Items      []models.Product `json:"items"`
	Total      int              `json:"total"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
	TotalPages int              `json:"total_pages"`
}

func paginate(products []models.Product, page, pageSize int) OffsetPage {
	total := len(products)
	totalPages := total / pageSize
	if total%pageSize > 0 {
		totalPages++
	}

	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return OffsetPage{
		Items:      products[start:end],
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}

type actionView struct {
	Kind  string `json:"kind"`
	Label string `json:"label"`
}

type turnView struct {
	ID        string       `json:"id"`
	Role      string       `json:"role"`
	Content   string       `json:"content"`
	CreatedAt time.Time    `json:"created_at"`
	Actions   []actionView `json:"actions,omitempty"`
}

func turnPayload(turn assistant.Turn) turnView {
	view := turnView{
		ID:        turn.ID,
		Role:      string(turn.Role),
		Content:   turn.Content,
		CreatedAt: turn.CreatedAt,
	}
	for _, a := range turn.Actions {
		view.Actions = append(view.Actions, actionView{
			Kind:  actionKind(a),
			Label: a.Label(),
		})
	}
	return view
}

func transcriptPayload(session *assistant.Session) map[string]interface{} {
	turns := session.Turns()
	views := make([]turnView, len(turns))
	for i, t := range turns {
		views[i] = turnPayload(t)
	}
	return map[string]interface{}{"turns": views}
}

func actionKind(a assistant.Action) string {
	switch a.(type) {
	case assistant.AddToCart:
		return "add_to_cart"
	case assistant.RemoveFromCart:
		return "remove_from_cart"
	case assistant.Search:
		return "search"
	case assistant.Navigate:
		return "navigate"
	default:
		return "unknown"
	}
}
