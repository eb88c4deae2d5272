package http

import (
	"lifeos/internal/checklist"
	"lifeos/internal/model"
	"lifeos/internal/note"
	"lifeos/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Pinned  bool   `json:"pinned"`
}

func (r createReq) toInput() note.CreateNoteInput {
	return note.CreateNoteInput{Title: r.Title, Content: r.Content, Pinned: r.Pinned}
}

type listReq struct {
	Query  string `form:"q"`
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}

func (r listReq) toInput() note.ListNotesInput {
	limit := r.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if r.Offset < 0 {
		r.Offset = 0
	}
	return note.ListNotesInput{Query: r.Query, Limit: limit, Offset: r.Offset}
}

type updateReq struct {
	ID      uint    `json:"-"`
	Title   *string `json:"title"`
	Content *string `json:"content"`
	Pinned  *bool   `json:"pinned"`
}

func (r updateReq) toInput() note.UpdateNoteInput {
	return note.UpdateNoteInput{ID: r.ID, Title: r.Title, Content: r.Content, Pinned: r.Pinned}
}

type checkItemReq struct {
	ID      uint   `json:"-"`
	Text    string `json:"text" binding:"required"`
	Checked bool   `json:"checked"`
}

func (r checkItemReq) toInput() note.CheckItemInput {
	return note.CheckItemInput{ID: r.ID, Text: r.Text, Checked: r.Checked}
}

// --- Response DTOs ---

type checklistResp struct {
	Total     int  `json:"total"`
	Completed int  `json:"completed"`
	Done      bool `json:"done"`
}

type noteResp struct {
	ID        uint              `json:"id"`
	Title     string            `json:"title"`
	Content   string            `json:"content"`
	Pinned    bool              `json:"pinned"`
	Checklist *checklistResp    `json:"checklist,omitempty"`
	CreatedAt response.DateTime `json:"createdAt"`
	UpdatedAt response.DateTime `json:"updatedAt"`
}

func newNoteResp(n model.Note) noteResp {
	var cl *checklistResp
	if stats := checklist.Summarize(n.Content); stats.Total > 0 {
		cl = &checklistResp{Total: stats.Total, Completed: stats.Completed, Done: stats.Done()}
	}
	return noteResp{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		Pinned:    n.Pinned,
		Checklist: cl,
		CreatedAt: response.DateTime(n.CreatedAt),
		UpdatedAt: response.DateTime(n.UpdatedAt),
	}
}

type noteEnvelope struct {
	Note noteResp `json:"note"`
}

func (h *handler) newNoteEnvelope(n model.Note) noteEnvelope {
	return noteEnvelope{Note: newNoteResp(n)}
}

type listResp struct {
	Notes  []noteResp `json:"notes"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

func (h *handler) newListResp(out note.ListNotesOutput) listResp {
	notes := make([]noteResp, 0, len(out.Notes))
	for _, n := range out.Notes {
		notes = append(notes, newNoteResp(n))
	}
	return listResp{Notes: notes, Total: out.Total, Limit: out.Limit, Offset: out.Offset}
}
