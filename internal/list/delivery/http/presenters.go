package http

import (
	"lifeos/internal/list"
	"lifeos/internal/model"
	"lifeos/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Title   string   `json:"title"`
	Pinned  bool     `json:"pinned"`
	Entries []string `json:"entries"`
}

func (r createReq) toInput() list.CreateListInput {
	return list.CreateListInput{Title: r.Title, Pinned: r.Pinned, Entries: r.Entries}
}

type listReq struct {
	Query  string `form:"q"`
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}

func (r listReq) toInput() list.ListListsInput {
	limit := r.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if r.Offset < 0 {
		r.Offset = 0
	}
	return list.ListListsInput{Query: r.Query, Limit: limit, Offset: r.Offset}
}

type updateReq struct {
	ID     uint    `json:"-"`
	Title  *string `json:"title"`
	Pinned *bool   `json:"pinned"`
}

func (r updateReq) toInput() list.UpdateListInput {
	return list.UpdateListInput{ID: r.ID, Title: r.Title, Pinned: r.Pinned}
}

type addEntryReq struct {
	ListID uint   `json:"-"`
	Text   string `json:"text" binding:"required"`
}

func (r addEntryReq) toInput() list.AddEntryInput {
	return list.AddEntryInput{ListID: r.ListID, Text: r.Text}
}

type updateEntryReq struct {
	ListID  uint    `json:"-"`
	EntryID uint    `json:"-"`
	Text    *string `json:"text"`
	Checked *bool   `json:"checked"`
}

func (r updateEntryReq) toInput() list.UpdateEntryInput {
	return list.UpdateEntryInput{ListID: r.ListID, EntryID: r.EntryID, Text: r.Text, Checked: r.Checked}
}

// --- Response DTOs ---

type entryResp struct {
	ID       uint   `json:"id"`
	Text     string `json:"text"`
	Checked  bool   `json:"checked"`
	Position int    `json:"position"`
}

type listResp struct {
	ID        uint              `json:"id"`
	Title     string            `json:"title"`
	Pinned    bool              `json:"pinned"`
	Entries   []entryResp       `json:"entries"`
	Total     int               `json:"total"`
	Completed int               `json:"completed"`
	Done      bool              `json:"done"`
	CreatedAt response.DateTime `json:"createdAt"`
	UpdatedAt response.DateTime `json:"updatedAt"`
}

func newListResp(l model.List) listResp {
	entries := make([]entryResp, 0, len(l.Entries))
	for _, e := range l.Entries {
		entries = append(entries, entryResp{ID: e.ID, Text: e.Text, Checked: e.Checked, Position: e.Position})
	}
	checked, total := l.Progress()
	return listResp{
		ID:        l.ID,
		Title:     l.Title,
		Pinned:    l.Pinned,
		Entries:   entries,
		Total:     total,
		Completed: checked,
		Done:      total > 0 && checked == total,
		CreatedAt: response.DateTime(l.CreatedAt),
		UpdatedAt: response.DateTime(l.UpdatedAt),
	}
}

type listEnvelope struct {
	List listResp `json:"list"`
}

func (h *handler) newListEnvelope(l model.List) listEnvelope {
	return listEnvelope{List: newListResp(l)}
}

type pageResp struct {
	Lists  []listResp `json:"lists"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

func (h *handler) newPageResp(out list.ListListsOutput) pageResp {
	lists := make([]listResp, 0, len(out.Lists))
	for _, l := range out.Lists {
		lists = append(lists, newListResp(l))
	}
	return pageResp{Lists: lists, Total: out.Total, Limit: out.Limit, Offset: out.Offset}
}
