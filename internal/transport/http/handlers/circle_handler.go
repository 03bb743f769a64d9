package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/vblajic/chirper/internal/service"
)

type CircleHandler struct {
	circleService *service.CircleService
}

func NewCircleHandler(circleService *service.CircleService) *CircleHandler {
	return &CircleHandler{circleService: circleService}
}

type createCircleRequest struct {
	OwnerID int64 `json:"ownerId"`
}

func (h *CircleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCircleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	id, err := h.circleService.Create(r.Context(), req.OwnerID)
	if err != nil {
		writeUserError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

type addMemberRequest struct {
	MemberID int64 `json:"memberId"`
}

func (h *CircleHandler) AddMember(w http.ResponseWriter, r *http.Request) {
	circleID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid circle ID")
		return
	}

	var req addMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	id, err := h.circleService.AddMember(r.Context(), circleID, req.MemberID)
	if err != nil {
		writeUserError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

func (h *CircleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid circle ID")
		return
	}

	circle, err := h.circleService.Get(r.Context(), id)
	if err != nil {
		writeUserError(w, err)
		return
	}
	if circle == nil {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "Circle not found")
		return
	}

	writeJSON(w, http.StatusOK, circle)
}

func (h *CircleHandler) GetMember(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid member ID")
		return
	}

	member, err := h.circleService.GetMember(r.Context(), id)
	if err != nil {
		writeUserError(w, err)
		return
	}
	if member == nil {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "Circle member not found")
		return
	}

	writeJSON(w, http.StatusOK, member)
}
