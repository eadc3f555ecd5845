package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/freeplay/internal/api/request"
	"github.com/mcoot/freeplay/internal/api/response"
	"github.com/mcoot/freeplay/internal/model"
	"github.com/mcoot/freeplay/internal/services/catalog"
	"github.com/mcoot/freeplay/internal/services/stats"
)

// FriendsHandler handles the friends endpoint
type FriendsHandler struct {
	catalog catalog.ServiceInterface
}

// NewFriendsHandler creates a new friends handler
func NewFriendsHandler(catalog catalog.ServiceInterface) *FriendsHandler {
	return &FriendsHandler{catalog: catalog}
}

// List handles GET /api/v1/friends
func (h *FriendsHandler) List(w http.ResponseWriter, r *http.Request) {
	friends := h.catalog.Friends()
	out := make([]response.Friend, len(friends))
	for i, f := range friends {
		out[i] = response.FriendFromModel(f)
	}
	response.JSON(w, http.StatusOK, response.FriendsResponse{
		Friends:     out,
		OnlineCount: stats.OnlineCount(friends),
	})
}

// Get handles GET /api/v1/friends/{id}
func (h *FriendsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := request.ParseFriendID(mux.Vars(r)["id"])
	if err != nil {
		WriteError(w, err)
		return
	}

	friend, ok := h.catalog.Friend(id)
	if !ok {
		WriteError(w, model.ErrFriendNotFound)
		return
	}
	response.JSON(w, http.StatusOK, response.FriendFromModel(friend))
}
