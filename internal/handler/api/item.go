package api

import (
	"net/http"

	reqdto "shareit/internal/handler/dto/request"
	resdto "shareit/internal/handler/dto/response"
	"shareit/internal/handler/httperr"
	"shareit/internal/usecase/commands"
	"shareit/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ItemHandler struct {
	cmds        commands.ItemCommands
	q           queries.ItemQueries
	comments    commands.CommentCommands
	commentView queries.CommentQueries
}

func NewItemHandler(
	cmds commands.ItemCommands,
	q queries.ItemQueries,
	comments commands.CommentCommands,
	commentView queries.CommentQueries,
) *ItemHandler {
	return &ItemHandler{cmds: cmds, q: q, comments: comments, commentView: commentView}
}

// @Summary Create item
// @Description The acting user becomes the owner
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user id"
// @Param request body reqdto.CreateItemRequest true "Create item request"
// @Success 201 {object} resdto.ItemResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /items [post]
func (h *ItemHandler) Create(c *gin.Context) {
	ownerID, ok := actorID(c)
	if !ok {
		return
	}
	var req reqdto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.Create(c.Request.Context(), ownerID, req.ToCommand())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respond(c, http.StatusCreated, ownerID, result.ItemID)
}

// @Summary Update item
// @Description Owner only, absent fields keep their value
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user id"
// @Param itemId path int true "Item ID"
// @Param request body reqdto.UpdateItemRequest true "Update item request"
// @Success 200 {object} resdto.ItemResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /items/{itemId} [patch]
func (h *ItemHandler) Update(c *gin.Context) {
	ownerID, ok := actorID(c)
	if !ok {
		return
	}
	itemID, ok := pathID(c, "itemId")
	if !ok {
		return
	}
	var req reqdto.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.Update(c.Request.Context(), ownerID, itemID, req.ToCommand()); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respond(c, http.StatusOK, ownerID, itemID)
}

// @Summary Get item
// @Description Includes comments; the owner also sees the last and next approved booking
// @Tags items
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user id"
// @Param itemId path int true "Item ID"
// @Success 200 {object} resdto.ItemResponse
// @Failure 404 {object} httperr.Response
// @Router /items/{itemId} [get]
func (h *ItemHandler) Get(c *gin.Context) {
	viewerID, ok := actorID(c)
	if !ok {
		return
	}
	itemID, ok := pathID(c, "itemId")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), viewerID, itemID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromItemView(view))
}

// @Summary List own items
// @Tags items
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user id"
// @Param from query int false "Offset"
// @Param size query int false "Page size"
// @Success 200 {array} resdto.ItemResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /items [get]
func (h *ItemHandler) ListOwn(c *gin.Context) {
	ownerID, ok := actorID(c)
	if !ok {
		return
	}
	var q reqdto.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid paging parameters", nil)
		return
	}
	page, err := q.ToPage()
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	views, err := h.q.ListByOwner(c.Request.Context(), ownerID, page)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromItemViews(views))
}

// @Summary Search available items
// @Description Case-insensitive match on name or description; blank text yields an empty list
// @Tags items
// @Produce json
// @Param text query string false "Search text"
// @Param from query int false "Offset"
// @Param size query int false "Page size"
// @Success 200 {array} resdto.ItemResponse
// @Failure 400 {object} httperr.Response
// @Router /items/search [get]
func (h *ItemHandler) Search(c *gin.Context) {
	var q reqdto.SearchItemsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid paging parameters", nil)
		return
	}
	page, err := q.ToPage()
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	views, err := h.q.Search(c.Request.Context(), q.Text, page)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromItemViews(views))
}

// @Summary Delete item
// @Tags items
// @Param X-Sharer-User-Id header int true "Acting user id"
// @Param itemId path int true "Item ID"
// @Success 204
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /items/{itemId} [delete]
func (h *ItemHandler) Delete(c *gin.Context) {
	ownerID, ok := actorID(c)
	if !ok {
		return
	}
	itemID, ok := pathID(c, "itemId")
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), ownerID, itemID); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Comment on item
// @Description Allowed once the author has a finished approved booking of the item
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user id"
// @Param itemId path int true "Item ID"
// @Param request body reqdto.CreateCommentRequest true "Comment"
// @Success 201 {object} resdto.CommentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /items/{itemId}/comment [post]
func (h *ItemHandler) AddComment(c *gin.Context) {
	authorID, ok := actorID(c)
	if !ok {
		return
	}
	itemID, ok := pathID(c, "itemId")
	if !ok {
		return
	}
	var req reqdto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.comments.Create(c.Request.Context(), authorID, itemID, req.Text)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.commentView.GetByID(c.Request.Context(), result.CommentID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load comment", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCommentView(view))
}

func (h *ItemHandler) respond(c *gin.Context, status int, viewerID, itemID int64) {
	view, err := h.q.GetByID(c.Request.Context(), viewerID, itemID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load item", nil)
		return
	}
	c.JSON(status, resdto.FromItemView(view))
}
