package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"time"

	"github.com/collectyourcards/card-services/internal/cardsvc/models"
	"github.com/collectyourcards/card-services/internal/cardsvc/table"
	"github.com/collectyourcards/card-services/internal/comm"
	"github.com/go-chi/jwtauth"
	log "github.com/sirupsen/logrus"
)

// Narrow service contracts the handlers depend on, so routing and
// parameter handling test without a database.

type CardBrowser interface {
	BrowseCards(ctx context.Context, p table.Params) (table.Result, error)
	GetCard(ctx context.Context, id int64) (*models.CardRow, error)
}

type CollectionManager interface {
	BrowseCollection(ctx context.Context, userId int64, p table.Params) (table.Result, error)
	AddCard(ctx context.Context, userId, cardId int64, od models.OwnedDetails) (int64, error)
	UpdateCard(ctx context.Context, userId, userCardId int64, od models.OwnedDetails) error
	DeleteCard(ctx context.Context, userId, userCardId int64) error
	ToggleFavorite(ctx context.Context, userId, userCardId int64) (bool, error)
	GetUserCard(ctx context.Context, userId, userCardId int64) (*models.CardRow, error)
}

type ListBrowser interface {
	BrowseList(ctx context.Context, userId int64, slug string, p table.Params) (*models.List, table.Result, error)
	RemoveCard(ctx context.Context, userId int64, slug string, cardId int64) error
}

type PreferenceProvider interface {
	VisibleColumns(ctx context.Context, userId int64, tableName string, mode table.ViewMode) []table.ColumnID
	SaveVisibleColumns(ctx context.Context, userId int64, tableName string, mode table.ViewMode, columns []string) ([]table.ColumnID, error)
}

type ActivityFeed interface {
	Recent(ctx context.Context, limit int) ([]comm.CollectionActivity, error)
}

type UserProvisioner interface {
	GetOrCreateUser(ctx context.Context, info models.User) (*models.User, error)
}

type ActivityPublisher interface {
	PublishActivity(a comm.CollectionActivity)
}

type Handler struct {
	tokenAuth *jwtauth.JWTAuth

	Cards       CardBrowser
	Collection  CollectionManager
	Lists       ListBrowser
	Preferences PreferenceProvider
	Activity    ActivityFeed
	Users       UserProvisioner
	Publisher   ActivityPublisher
}

func NewHandler(cards CardBrowser, collection CollectionManager, lists ListBrowser,
	preferences PreferenceProvider, activity ActivityFeed, users UserProvisioner,
	publisher ActivityPublisher) *Handler {
	return &Handler{
		Cards:       cards,
		Collection:  collection,
		Lists:       lists,
		Preferences: preferences,
		Activity:    activity,
		Users:       users,
		Publisher:   publisher,
	}
}

type Response struct {
	Message string      `json:"message"`
	Code    int         `json:"code"`
	Data    interface{} `json:"data"`
	Error   string      `json:"error"`
}

func (h *Handler) CreateResponse(w http.ResponseWriter, rsp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(rsp.Code)

	if err := json.NewEncoder(w).Encode(rsp); err != nil {
		log.Errorf("Failed to encode response: %v", err)
	}
}

func (h *Handler) serverError(w http.ResponseWriter, where string, err error) {
	log.Errorf("Error [%s] %s", where, err)
	h.CreateResponse(w, Response{Code: http.StatusInternalServerError, Error: "server error"})
}

func (h *Handler) notFound(w http.ResponseWriter, what string) {
	h.CreateResponse(w, Response{Code: http.StatusNotFound, Error: what + " not found"})
}

func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	rsp := Response{
		Message: "card service is running at port " + os.Getenv("CARD_SERVICE_PORT"),
		Code:    200,
		Data:    nil,
	}
	if err := json.NewEncoder(w).Encode(rsp); err != nil {
		log.Errorf("Failed to encode health response: %v", err)
	}
}

func (h *Handler) InitAuth() {
	var jwtKey = os.Getenv("JWT_SECRET_KEY")
	h.tokenAuth = jwtauth.New("HS256", []byte(jwtKey), nil)

	expirationTime := time.Now().Add(7 * 24 * time.Hour).Unix()

	_, tokenString, _ := h.tokenAuth.Encode(map[string]interface{}{
		"user_id": 1000001,
		"exp":     expirationTime,
	})

	// For debugging only, comment it out in production
	log.Infof("DEBUG: JWT for testing expires soon : %s", tokenString)
}

// userIdFromRequest pulls the authenticated user id out of the
// verified JWT claims.
func userIdFromRequest(r *http.Request) (int64, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return 0, false
	}
	raw, ok := claims["user_id"]
	if !ok {
		return 0, false
	}
	switch v := raw.(type) {
	case float64:
		return int64(v), true
	case int64:
		return v, true
	default:
		return 0, false
	}
}

func (h *Handler) publish(a comm.CollectionActivity) {
	if h.Publisher != nil {
		h.Publisher.PublishActivity(a)
	}
}
