package experiments

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"marine-api/internal/shared/server/respond"
)

const maxBodyBytes = 1 << 20

var errTrailingData = errors.New("unexpected data after JSON object")

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches experiment routes to the router group.
func (h *Handler) RegisterRoutes(rg gin.IRoutes) {
	rg.GET("/experiment", h.list)
	rg.POST("/experiment", h.create)
	rg.DELETE("/experiment/:id", h.delete)
}

func (h *Handler) list(c *gin.Context) {
	f, err := ParseFilter(queryParam(c, "type"), queryParam(c, "score_over"))
	if err != nil {
		writeError(c, err)
		return
	}

	rows, err := h.Svc.List(c.Request.Context(), f)
	if err != nil {
		writeError(c, err)
		return
	}
	respond.OK(c, toResponses(rows))
}

func (h *Handler) create(c *gin.Context) {
	body, err := decodeBody(c.Request.Body)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "Request body must be a JSON object.")
		return
	}
	if v, ok := body[KeySubjectID]; ok && v != nil {
		c.Set("subjectId", literalString(v))
	}

	created, err := h.Svc.Create(c.Request.Context(), body)
	if err != nil {
		writeError(c, err)
		return
	}
	c.Set("experimentId", created.ID)
	respond.Created(c, toCreatedResponse(created))
}

func (h *Handler) delete(c *gin.Context) {
	rawID := c.Param("id")
	c.Set("experimentId", rawID)

	deleted, err := h.Svc.Delete(c.Request.Context(), rawID)
	if err != nil {
		writeError(c, err)
		return
	}
	respond.OK(c, toDeletedResponse(deleted))
}

// queryParam returns nil for an absent key so validators can tell absent from empty.
func queryParam(c *gin.Context, key string) any {
	v, ok := c.GetQuery(key)
	if !ok {
		return nil
	}
	return v
}

// decodeBody reads exactly one JSON object, keeping numbers as json.Number. An empty or
// null body decodes to an empty map so the missing-key checks report it.
func decodeBody(r io.Reader) (map[string]any, error) {
	if r == nil {
		return map[string]any{}, nil
	}
	raw, err := io.ReadAll(io.LimitReader(r, maxBodyBytes))
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return map[string]any{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var body map[string]any
	if err := dec.Decode(&body); err != nil {
		return nil, err
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return nil, errTrailingData
	}
	if body == nil {
		body = map[string]any{}
	}
	return body, nil
}

func writeError(c *gin.Context, err error) {
	var fieldErr *FieldError
	var notFound *NotFoundError
	switch {
	case errors.As(err, &fieldErr):
		respond.Error(c, http.StatusBadRequest, fieldErr.Error())
	case errors.Is(err, ErrInvalidID):
		respond.Error(c, http.StatusBadRequest, "ID must be an integer")
	case errors.As(err, &notFound):
		respond.Error(c, http.StatusNotFound, notFound.Error())
	default:
		respond.InternalError(c, err)
	}
}
