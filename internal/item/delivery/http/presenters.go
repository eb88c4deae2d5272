package http

import (
	"lifeos/internal/item"
	"lifeos/internal/model"
	"lifeos/pkg/response"
)

// --- Request DTOs ---

type subItemReq struct {
	ID          *uint   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	DueDate     *string `json:"dueDate"`
	DueTime     *string `json:"dueTime"`
	Priority    string  `json:"priority"`
	Duration    string  `json:"duration"`
}

func (r subItemReq) toInput() item.SubItemInput {
	return item.SubItemInput{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		DueDate:     r.DueDate,
		DueTime:     r.DueTime,
		Priority:    r.Priority,
		Duration:    r.Duration,
	}
}

func toSubItemInputs(reqs []subItemReq) []item.SubItemInput {
	subs := make([]item.SubItemInput, len(reqs))
	for i, r := range reqs {
		subs[i] = r.toInput()
	}
	return subs
}

type createReq struct {
	Title              string       `json:"title"`
	Description        string       `json:"description"`
	ItemType           string       `json:"itemType"`
	State              string       `json:"state"`
	DueDate            string       `json:"dueDate"`
	DueTime            string       `json:"dueTime"`
	ScheduleType       string       `json:"scheduleType"`
	ScheduleDays       string       `json:"scheduleDays"`
	ScheduledTime      string       `json:"scheduledTime"`
	RecurrenceType     string       `json:"recurrenceType"`
	RecurrenceInterval int          `json:"recurrenceInterval"`
	RecurrenceAnchor   string       `json:"recurrenceAnchor"`
	ShowOnCalendar     bool         `json:"showOnCalendar"`
	Priority           string       `json:"priority"`
	Complexity         string       `json:"complexity"`
	Energy             string       `json:"energy"`
	Duration           string       `json:"duration"`
	SubItems           []subItemReq `json:"subItems"`
}

func (r createReq) toInput() item.CreateItemInput {
	return item.CreateItemInput{
		Title:              r.Title,
		Description:        r.Description,
		ItemType:           r.ItemType,
		State:              r.State,
		DueDate:            r.DueDate,
		DueTime:            r.DueTime,
		ScheduleType:       r.ScheduleType,
		ScheduleDays:       r.ScheduleDays,
		ScheduledTime:      r.ScheduledTime,
		RecurrenceType:     r.RecurrenceType,
		RecurrenceInterval: r.RecurrenceInterval,
		RecurrenceAnchor:   r.RecurrenceAnchor,
		ShowOnCalendar:     r.ShowOnCalendar,
		Priority:           r.Priority,
		Complexity:         r.Complexity,
		Energy:             r.Energy,
		Duration:           r.Duration,
		SubItems:           toSubItemInputs(r.SubItems),
	}
}

// ---

type listReq struct {
	ItemType string `form:"itemType"`
	State    string `form:"state"`
	Limit    int    `form:"limit"`
	Offset   int    `form:"offset"`
}

func (r listReq) toInput() item.ListItemsInput {
	limit := r.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if r.Offset < 0 {
		r.Offset = 0
	}
	return item.ListItemsInput{
		ItemType: r.ItemType,
		State:    r.State,
		Limit:    limit,
		Offset:   r.Offset,
	}
}

// ---

type updateReq struct {
	ID                 uint          `json:"-"` // populated from URI param
	Title              *string       `json:"title"`
	Description        *string       `json:"description"`
	ItemType           *string       `json:"itemType"`
	State              *string       `json:"state"`
	DueDate            *string       `json:"dueDate"`
	DueTime            *string       `json:"dueTime"`
	ScheduleType       *string       `json:"scheduleType"`
	ScheduleDays       *string       `json:"scheduleDays"`
	ScheduledTime      *string       `json:"scheduledTime"`
	RecurrenceType     *string       `json:"recurrenceType"`
	RecurrenceInterval *int          `json:"recurrenceInterval"`
	RecurrenceAnchor   *string       `json:"recurrenceAnchor"`
	ShowOnCalendar     *bool         `json:"showOnCalendar"`
	IsOverdue          *bool         `json:"isOverdue"`
	Priority           *string       `json:"priority"`
	Complexity         *string       `json:"complexity"`
	Energy             *string       `json:"energy"`
	Duration           *string       `json:"duration"`
	SubItems           *[]subItemReq `json:"subItems"`
}

func (r updateReq) toInput() item.UpdateItemInput {
	input := item.UpdateItemInput{
		ID:                 r.ID,
		Title:              r.Title,
		Description:        r.Description,
		ItemType:           r.ItemType,
		State:              r.State,
		DueDate:            r.DueDate,
		DueTime:            r.DueTime,
		ScheduleType:       r.ScheduleType,
		ScheduleDays:       r.ScheduleDays,
		ScheduledTime:      r.ScheduledTime,
		RecurrenceType:     r.RecurrenceType,
		RecurrenceInterval: r.RecurrenceInterval,
		RecurrenceAnchor:   r.RecurrenceAnchor,
		ShowOnCalendar:     r.ShowOnCalendar,
		IsOverdue:          r.IsOverdue,
		Priority:           r.Priority,
		Complexity:         r.Complexity,
		Energy:             r.Energy,
		Duration:           r.Duration,
	}
	if r.SubItems != nil {
		subs := toSubItemInputs(*r.SubItems)
		input.SubItems = &subs
	}
	return input
}

// ---

type toggleReq struct {
	ID   uint   `json:"-"`
	Date string `json:"date"`
}

func (r toggleReq) toInput() item.ToggleInput {
	return item.ToggleInput{ID: r.ID, Date: r.Date}
}

// --- Response DTOs ---

// ItemResp is the JSON shape of an item, shared with the calendar endpoints.
type ItemResp struct {
	ID                 uint               `json:"id"`
	ParentItemID       *uint              `json:"parentItemId"`
	Title              string             `json:"title"`
	Description        string             `json:"description"`
	ItemType           string             `json:"itemType"`
	State              string             `json:"state"`
	DueDate            *response.Date     `json:"dueDate"`
	DueTime            string             `json:"dueTime"`
	ScheduleType       string             `json:"scheduleType"`
	ScheduleDays       string             `json:"scheduleDays"`
	ScheduledTime      string             `json:"scheduledTime"`
	RecurrenceType     string             `json:"recurrenceType"`
	RecurrenceInterval int                `json:"recurrenceInterval"`
	RecurrenceAnchor   string             `json:"recurrenceAnchor"`
	IsCompleted        bool               `json:"isCompleted"`
	CompletedAt        *response.DateTime `json:"completedAt"`
	IsOverdue          bool               `json:"isOverdue"`
	ShowOnCalendar     bool               `json:"showOnCalendar"`
	IsParent           bool               `json:"isParent"`
	Priority           string             `json:"priority"`
	Complexity         string             `json:"complexity"`
	Energy             string             `json:"energy"`
	Duration           string             `json:"duration"`
	DurationMinutes    int                `json:"durationMinutes"`
	Completions        []string           `json:"completions"`
	SubItems           []ItemResp         `json:"subItems"`
	CreatedAt          response.DateTime  `json:"createdAt"`
	UpdatedAt          response.DateTime  `json:"updatedAt"`
}

// NewItemResp converts an item and its children to the response shape.
func NewItemResp(it model.Item) ItemResp {
	completions := make([]string, len(it.Completions))
	for i, c := range it.Completions {
		completions[i] = c.CompletionDate
	}
	subItems := make([]ItemResp, len(it.Children))
	for i, child := range it.Children {
		subItems[i] = NewItemResp(child)
	}

	return ItemResp{
		ID:                 it.ID,
		ParentItemID:       it.ParentItemID,
		Title:              it.Title,
		Description:        it.Description,
		ItemType:           string(it.ItemType),
		State:              string(it.State),
		DueDate:            response.NewDate(it.DueDate),
		DueTime:            it.DueTime,
		ScheduleType:       it.ScheduleType,
		ScheduleDays:       it.ScheduleDays,
		ScheduledTime:      it.ScheduledTime,
		RecurrenceType:     it.RecurrenceType,
		RecurrenceInterval: it.RecurrenceInterval,
		RecurrenceAnchor:   it.RecurrenceAnchor,
		IsCompleted:        it.IsCompleted,
		CompletedAt:        response.NewDateTime(it.CompletedAt),
		IsOverdue:          it.IsOverdue,
		ShowOnCalendar:     it.ShowOnCalendar,
		IsParent:           it.IsParent,
		Priority:           it.Priority,
		Complexity:         it.Complexity,
		Energy:             it.Energy,
		Duration:           it.Duration,
		DurationMinutes:    it.DurationMinutes,
		Completions:        completions,
		SubItems:           subItems,
		CreatedAt:          response.DateTime(it.CreatedAt),
		UpdatedAt:          response.DateTime(it.UpdatedAt),
	}
}

type itemEnvelope struct {
	Item ItemResp `json:"item"`
}

func (h *handler) newItemEnvelope(it model.Item) itemEnvelope {
	return itemEnvelope{Item: NewItemResp(it)}
}

type listResp struct {
	Items  []ItemResp `json:"items"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

func (h *handler) newListResp(out item.ListItemsOutput) listResp {
	items := make([]ItemResp, len(out.Items))
	for i, it := range out.Items {
		items[i] = NewItemResp(it)
	}
	return listResp{
		Items:  items,
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}

type toggleResp struct {
	Completed   bool           `json:"completed"`
	Advanced    bool           `json:"advanced,omitempty"`
	NextDueDate *response.Date `json:"nextDueDate,omitempty"`
}

func (h *handler) newToggleResp(out item.ToggleOutput) toggleResp {
	return toggleResp{
		Completed:   out.Completed,
		Advanced:    out.Advanced,
		NextDueDate: response.NewDate(out.NextDueDate),
	}
}
