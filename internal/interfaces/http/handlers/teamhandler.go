package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/orris-inc/complaintdesk/internal/application/team/usecases"
	"github.com/orris-inc/complaintdesk/internal/shared/logger"
	"github.com/orris-inc/complaintdesk/internal/shared/utils"
)

type TeamHandler struct {
	addMemberUC    addMemberUseCase
	removeMemberUC removeMemberUseCase
	logger         logger.Interface
}

func NewTeamHandler(addMemberUC addMemberUseCase, removeMemberUC removeMemberUseCase, logger logger.Interface) *TeamHandler {
	return &TeamHandler{
		addMemberUC:    addMemberUC,
		removeMemberUC: removeMemberUC,
		logger:         logger,
	}
}

type AddMemberRequest struct {
	UserID uint   `json:"user_id"`
	Role   string `json:"role"`
}

// AddMember handles POST /api/teams/:id/members
func (h *TeamHandler) AddMember(c *gin.Context) {
	actorID, err := currentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	teamID, err := utils.ParseUintParam(c, "id", "team")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddMemberRequest
	if err := bindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for add member", "error", err, "team_id", teamID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.addMemberUC.Execute(c.Request.Context(), usecases.AddMemberCommand{
		TeamID:  teamID,
		UserID:  req.UserID,
		Role:    req.Role,
		ActorID: actorID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Member added successfully")
}

// RemoveMember handles DELETE /api/teams/:id/members/:user_id
func (h *TeamHandler) RemoveMember(c *gin.Context) {
	actorID, err := currentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	teamID, err := utils.ParseUintParam(c, "id", "team")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, err := utils.ParseUintParam(c, "user_id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.removeMemberUC.Execute(c.Request.Context(), usecases.RemoveMemberCommand{
		TeamID:  teamID,
		UserID:  userID,
		ActorID: actorID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
