package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/vblajic/chirper/internal/service"
)

// maxAvatarBytes caps in-memory multipart parsing for avatar uploads.
const maxAvatarBytes = 10 << 20

type ProfileHandler struct {
	profileService *service.ProfileService
}

func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// Create accepts a multipart form: user_name, full_name, description,
// optional region, main_url and an optional avatar file part.
func (h *ProfileHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxAvatarBytes); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_FORM", "Invalid multipart form")
		return
	}

	input := service.CreateProfileInput{
		UserName:    r.FormValue("user_name"),
		FullName:    r.FormValue("full_name"),
		Description: r.FormValue("description"),
	}
	if region := r.FormValue("region"); region != "" {
		input.Region = &region
	}
	if mainURL := r.FormValue("main_url"); mainURL != "" {
		input.MainURL = &mainURL
	}

	if avatar, ok := readFilePart(r, "avatar"); ok {
		input.Avatar = avatar
	}

	id, err := h.profileService.Create(r.Context(), input)
	if err != nil {
		writeUserError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid profile ID")
		return
	}

	profile, err := h.profileService.Get(r.Context(), id)
	if err != nil {
		writeUserError(w, err)
		return
	}
	if profile == nil {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "Profile not found")
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

func (h *ProfileHandler) GetByUserName(w http.ResponseWriter, r *http.Request) {
	userName := r.PathValue("userName")

	profile, err := h.profileService.GetByUserName(r.Context(), userName)
	if err != nil {
		writeUserError(w, err)
		return
	}
	if profile == nil {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "Profile not found")
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

func (h *ProfileHandler) UpdateAvatar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid profile ID")
		return
	}

	if err := r.ParseMultipartForm(maxAvatarBytes); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_FORM", "Invalid multipart form")
		return
	}

	avatar, ok := readFilePart(r, "avatar")
	if !ok {
		writeError(w, http.StatusBadRequest, "MISSING_AVATAR", "Avatar file part is required")
		return
	}

	if err := h.profileService.UpdateAvatar(r.Context(), id, avatar); err != nil {
		writeUserError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type followRequest struct {
	FollowerID  int64 `json:"followerId"`
	FollowingID int64 `json:"followingId"`
}

func (h *ProfileHandler) Follow(w http.ResponseWriter, r *http.Request) {
	var req followRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	id, err := h.profileService.Follow(r.Context(), req.FollowerID, req.FollowingID)
	if err != nil {
		writeUserError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

func readFilePart(r *http.Request, name string) ([]byte, bool) {
	file, _, err := r.FormFile(name)
	if err != nil {
		return nil, false
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, false
	}
	return data, true
}
