package router

import (
	"fmt"
	"log/slog"
	"net/http"
	"unicode/utf8"

	"github.com/DjordjeVuckovic/proteus/internal/apperr"
	"github.com/DjordjeVuckovic/proteus/internal/domain"
	"github.com/DjordjeVuckovic/proteus/internal/dto"
	"github.com/DjordjeVuckovic/proteus/internal/storage"
	"github.com/DjordjeVuckovic/proteus/internal/token"
	"github.com/DjordjeVuckovic/proteus/pkg/pagination"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type TokenizeRouter struct {
	e              *echo.Echo
	store          storage.Store
	maxSourceBytes int
}

func NewTokenizeRouter(e *echo.Echo, store storage.Store, maxSourceBytes int) *TokenizeRouter {
	return &TokenizeRouter{
		e:              e,
		store:          store,
		maxSourceBytes: maxSourceBytes,
	}
}

func (r *TokenizeRouter) Bind() {
	r.e.POST("/tokenize", r.tokenizeHandler)
	r.e.GET("/scans/:id", r.getScanHandler)
	r.e.GET("/scans/:id/tokens", r.scanTokensHandler)
	r.e.GET("/kinds", r.kindsHandler)
}

// tokenizeHandler godoc
// @Summary Tokenize source text
// @Description Scans the source into tokens. The source field is required; an empty source yields a single EOF token. Unrecognized bytes are skipped and reported as diagnostics. With persist set the scan is archived and its id returned.
// @Tags tokenize
// @Accept json
// @Produce json
// @Param request body dto.TokenizeRequest true "Source to tokenize"
// @Success 200 {object} dto.TokenizeResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /tokenize [post]
func (r *TokenizeRouter) tokenizeHandler(c echo.Context) error {
	var req dto.TokenizeRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}
	if req.Source == nil {
		return apperr.NewValidation("source is required")
	}
	if len(*req.Source) > r.maxSourceBytes {
		return apperr.NewValidation(fmt.Sprintf("source exceeds %d bytes", r.maxSourceBytes))
	}

	scan := domain.NewScan(req.Name, []byte(*req.Source))

	resp := dto.TokenizeResponse{
		Name:        scan.Name,
		Tokens:      scan.Tokens,
		Diagnostics: scan.Diagnostics,
		KindCounts:  kindCounts(scan),
	}

	if req.Persist {
		id, err := r.store.Save(c.Request().Context(), scan)
		if err != nil {
			return fmt.Errorf("failed to save scan: %w", err)
		}
		slog.Debug("Scan archived", "id", id, "name", scan.Name, "tokens", len(scan.Tokens))
		resp.ID = &id
	}

	return c.JSON(http.StatusOK, resp)
}

// getScanHandler godoc
// @Summary Get an archived scan
// @Tags scans
// @Produce json
// @Param id path string true "Scan ID" format(uuid)
// @Success 200 {object} dto.ScanResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /scans/{id} [get]
func (r *TokenizeRouter) getScanHandler(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperr.NewValidationWrap("invalid scan id", err)
	}

	scan, err := r.store.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}

	resp := dto.ScanResponse{
		ID:          scan.ID,
		Name:        scan.Name,
		Source:      string(scan.Source),
		Tokens:      scan.Tokens,
		Diagnostics: scan.Diagnostics,
		CreatedAt:   scan.CreatedAt,
	}
	if !utf8.Valid(scan.Source) {
		resp.RawSource = scan.Source
	}

	return c.JSON(http.StatusOK, resp)
}

// scanTokensHandler godoc
// @Summary Page through the tokens of an archived scan
// @Tags scans
// @Produce json
// @Param id path string true "Scan ID" format(uuid)
// @Param cursor query string false "Cursor from a previous page"
// @Param size query int false "Page size"
// @Success 200 {object} pagination.CursorResult[dto.IndexedToken]
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /scans/{id}/tokens [get]
func (r *TokenizeRouter) scanTokensHandler(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperr.NewValidationWrap("invalid scan id", err)
	}

	var req pagination.CursorRequest
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &req); err != nil {
		return apperr.NewValidationWrap("invalid paging parameters", err)
	}
	req.Normalize()

	cursor, err := dto.DecodeCursor(req.Cursor)
	if err != nil {
		return apperr.NewValidationWrap("invalid cursor", err)
	}
	if cursor != nil && cursor.ScanID != id {
		return apperr.NewValidation("cursor belongs to another scan")
	}

	scan, err := r.store.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}

	start := 0
	if cursor != nil {
		start = min(cursor.Position+1, len(scan.Tokens))
	}
	end := min(start+req.Size+1, len(scan.Tokens))

	items := make([]dto.IndexedToken, 0, end-start)
	for i := start; i < end; i++ {
		items = append(items, dto.IndexedToken{Position: i, Token: scan.Tokens[i]})
	}

	page, err := pagination.NewCursorResult(items, req.Size, func(t dto.IndexedToken) (string, error) {
		return dto.EncodeCursor(t.Position, id)
	})
	if err != nil {
		return fmt.Errorf("failed to build page: %w", err)
	}

	return c.JSON(http.StatusOK, page)
}

// kindsHandler godoc
// @Summary List token kinds
// @Tags tokenize
// @Produce json
// @Success 200 {array} dto.KindInfo
// @Router /kinds [get]
func (r *TokenizeRouter) kindsHandler(c echo.Context) error {
	kinds := token.Kinds()
	out := make([]dto.KindInfo, len(kinds))
	for i, k := range kinds {
		out[i] = dto.KindInfo{Ordinal: int(k), Name: k.String(), HasValue: k.HasValue()}
	}
	return c.JSON(http.StatusOK, out)
}

func kindCounts(scan domain.Scan) map[string]int {
	counts := scan.KindCounts()
	out := make(map[string]int, len(counts))
	for k, n := range counts {
		out[k.String()] = n
	}
	return out
}
