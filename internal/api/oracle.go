package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/costar/explain"
	"github.com/katalvlaran/costar/internal/middleware"
	"github.com/katalvlaran/costar/oracle"
)

// maxNameLength bounds the :name path parameter.
const maxNameLength = 512

// OracleHandler serves queries against whichever Oracle the holder currently publishes.
type OracleHandler struct {
	oracles *oracle.Holder
	log     *logrus.Logger
}

// NewOracleHandler creates an OracleHandler with the given dependencies.
func NewOracleHandler(oracles *oracle.Holder, log *logrus.Logger) *OracleHandler {
	return &OracleHandler{oracles: oracles, log: log}
}

// answerResponse is the JSON payload of GET /v1/oracle/:name.
type answerResponse struct {
	explain.Answer
	Lines []string `json:"lines"`
}

// healthResponse is the JSON payload of GET /healthz.
type healthResponse struct {
	Status    string `json:"status"`
	Reference string `json:"reference"`
	Nodes     int    `json:"nodes"`
	Edges     int    `json:"edges"`
}

// current returns the Oracle in service or writes a 503 and returns nil.
func (h *OracleHandler) current(c *gin.Context) *oracle.Oracle {
	var orc *oracle.Oracle
	if h.oracles != nil {
		orc = h.oracles.Load()
	}
	if orc == nil {
		respondError(c, http.StatusServiceUnavailable, ErrCodeUnavailable, "collaboration index not loaded")
	}

	return orc
}

// Query handles GET /v1/oracle/:name.
func (h *OracleHandler) Query(c *gin.Context) {
	name := c.Param("name")
	if len(name) > maxNameLength {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "name exceeds maximum length")

		return
	}

	orc := h.current(c)
	if orc == nil {
		return
	}

	ans, err := orc.AnswerQuery(name)
	if err != nil {
		if errors.Is(err, oracle.ErrEmptyQuery) {
			respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "name must not be blank")

			return
		}
		h.log.WithError(err).WithField("request_id", middleware.GetRequestID(c)).Error("query failed")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "failed to explain collaboration chain")

		return
	}

	if ans.Steps == nil {
		ans.Steps = []explain.Step{}
	}
	c.JSON(http.StatusOK, answerResponse{Answer: ans, Lines: ans.Lines()})
}

// componentResponse is the JSON payload of GET /v1/component/:name.
type componentResponse struct {
	Name    string   `json:"name"`
	Size    int      `json:"size"`
	Members []string `json:"members"`
}

// Component handles GET /v1/component/:name.
func (h *OracleHandler) Component(c *gin.Context) {
	name := c.Param("name")
	if len(name) > maxNameLength {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "name exceeds maximum length")

		return
	}

	orc := h.current(c)
	if orc == nil {
		return
	}

	members := orc.Component(name)
	if members == nil {
		respondError(c, http.StatusNotFound, ErrCodeNotFound, "name is not in the collaboration graph")

		return
	}

	c.JSON(http.StatusOK, componentResponse{Name: name, Size: len(members), Members: members})
}

// Stats handles GET /v1/stats.
func (h *OracleHandler) Stats(c *gin.Context) {
	orc := h.current(c)
	if orc == nil {
		return
	}

	c.JSON(http.StatusOK, orc.Stats())
}

// Health handles GET /healthz.
func (h *OracleHandler) Health(c *gin.Context) {
	orc := h.current(c)
	if orc == nil {
		return
	}

	st := orc.Stats()
	c.JSON(http.StatusOK, healthResponse{
		Status:    "ok",
		Reference: st.Reference,
		Nodes:     st.Nodes,
		Edges:     st.Edges,
	})
}
