package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/apetrini/todolist-backend/internal/domain"
	"github.com/apetrini/todolist-backend/internal/service/todo"
)

// todoService defines the minimal interface needed by TodoHandler.
type todoService interface {
	CreateList(ctx context.Context, input todo.CreateListInput) (*domain.List, error)
	ListLists(ctx context.Context) ([]*domain.List, error)
	DeleteList(ctx context.Context, input todo.DeleteListInput) error
	CreateItem(ctx context.Context, input todo.CreateItemInput) (*domain.Item, error)
	ListItems(ctx context.Context, input todo.ListItemsInput) ([]*domain.Item, error)
	ToggleItem(ctx context.Context, input todo.ToggleItemInput) (*domain.Item, error)
	DeleteItem(ctx context.Context, input todo.DeleteItemInput) error
}

// TodoHandler serves list and item REST endpoints.
type TodoHandler struct {
	svc todoService
	log *slog.Logger
}

// NewTodoHandler creates a TodoHandler.
func NewTodoHandler(svc todoService, logger *slog.Logger) *TodoHandler {
	return &TodoHandler{svc: svc, log: logger.With("handler", "todo")}
}

type createListRequest struct {
	Title string `json:"title"`
}

type createItemRequest struct {
	Text string `json:"text"`
}

type listResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
}

type itemResponse struct {
	ID        string    `json:"id"`
	ListID    string    `json:"listId"`
	Text      string    `json:"text"`
	Done      bool      `json:"done"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateList handles POST /lists.
func (h *TodoHandler) CreateList(w http.ResponseWriter, r *http.Request) {
	var req createListRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	list, err := h.svc.CreateList(r.Context(), todo.CreateListInput{Title: req.Title})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toListResponse(list))
}

// ListLists handles GET /lists.
func (h *TodoHandler) ListLists(w http.ResponseWriter, r *http.Request) {
	lists, err := h.svc.ListLists(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]listResponse, 0, len(lists))
	for _, l := range lists {
		resp = append(resp, toListResponse(l))
	}
	writeJSON(w, http.StatusOK, resp)
}

// DeleteList handles DELETE /lists/{listID}.
func (h *TodoHandler) DeleteList(w http.ResponseWriter, r *http.Request) {
	listID, ok := pathUUID(w, r, "listID")
	if !ok {
		return
	}

	if err := h.svc.DeleteList(r.Context(), todo.DeleteListInput{ListID: listID}); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// CreateItem handles POST /lists/{listID}/items.
func (h *TodoHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	listID, ok := pathUUID(w, r, "listID")
	if !ok {
		return
	}

	var req createItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.svc.CreateItem(r.Context(), todo.CreateItemInput{ListID: listID, Text: req.Text})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toItemResponse(item))
}

// ListItems handles GET /lists/{listID}/items.
func (h *TodoHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	listID, ok := pathUUID(w, r, "listID")
	if !ok {
		return
	}

	items, err := h.svc.ListItems(r.Context(), todo.ListItemsInput{ListID: listID})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]itemResponse, 0, len(items))
	for _, it := range items {
		resp = append(resp, toItemResponse(it))
	}
	writeJSON(w, http.StatusOK, resp)
}

// ToggleItem handles POST /items/{itemID}/toggle.
func (h *TodoHandler) ToggleItem(w http.ResponseWriter, r *http.Request) {
	itemID, ok := pathUUID(w, r, "itemID")
	if !ok {
		return
	}

	item, err := h.svc.ToggleItem(r.Context(), todo.ToggleItemInput{ItemID: itemID})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toItemResponse(item))
}

// DeleteItem handles DELETE /items/{itemID}.
func (h *TodoHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	itemID, ok := pathUUID(w, r, "itemID")
	if !ok {
		return
	}

	if err := h.svc.DeleteItem(r.Context(), todo.DeleteItemInput{ItemID: itemID}); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// pathUUID parses a UUID path segment, writing a 400 on malformed input.
func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

func toListResponse(l *domain.List) listResponse {
	return listResponse{
		ID:        l.ID.String(),
		Title:     l.Title,
		CreatedAt: l.CreatedAt,
	}
}

func toItemResponse(it *domain.Item) itemResponse {
	return itemResponse{
		ID:        it.ID.String(),
		ListID:    it.ListID.String(),
		Text:      it.Text,
		Done:      it.Done,
		CreatedAt: it.CreatedAt,
	}
}
