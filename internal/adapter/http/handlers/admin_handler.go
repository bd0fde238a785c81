package handlers

import (
	"errors"
	"log"
	"net/http"

	response "marcenaria_gestao/internal/adapter/http/dto/response"
	"marcenaria_gestao/internal/usecase"
	"marcenaria_gestao/pkg"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	usecase usecase.ISnapshotUseCase
}

func NewAdminHandler(uc usecase.ISnapshotUseCase) *AdminHandler {
	return &AdminHandler{usecase: uc}
}

// PersistSnapshot godoc
// @Summary Save the whole store to the snapshot table now
// @Tags admin
// @Produce json
// @Success 200 {object} response.AdminResponse
// @Failure 503 {object} pkg.HTTPError
// @Router /admin/snapshot [post]
func (h *AdminHandler) PersistSnapshot(c *gin.Context) {
	n, err := h.usecase.Persist(c.Request.Context())
	if err != nil {
		log.Printf("[admin][handler] snapshot failed err=%v", err)
		writeError(c, mapAdminError(err))
		return
	}
	c.JSON(http.StatusOK, response.AdminResponse{Operation: "snapshot", Records: n})
}

// ResetStore godoc
// @Summary Replace the store content with the seed data
// @Tags admin
// @Produce json
// @Success 200 {object} response.AdminResponse
// @Router /admin/reset [post]
func (h *AdminHandler) ResetStore(c *gin.Context) {
	n, err := h.usecase.Reset(c.Request.Context())
	if err != nil {
		log.Printf("[admin][handler] reset failed err=%v", err)
		writeError(c, mapAdminError(err))
		return
	}
	c.JSON(http.StatusOK, response.AdminResponse{Operation: "reset", Records: n})
}

func mapAdminError(err error) *pkg.AppError {
	if errors.Is(err, usecase.ErrSnapshotsDisabled) {
		return pkg.NewDomainErrorSimple("SNAPSHOTS_DISABLED", "Snapshot persistence is not configured", http.StatusServiceUnavailable)
	}
	return internalError(err)
}
