package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/complaintdesk/internal/application/complaint/dto"
	"github.com/orris-inc/complaintdesk/internal/application/complaint/usecases"
	"github.com/orris-inc/complaintdesk/internal/shared/logger"
	"github.com/orris-inc/complaintdesk/internal/shared/utils"
)

type ComplaintHandler struct {
	submitUC     submitComplaintUseCase
	getUC        getComplaintUseCase
	transitionUC transitionComplaintUseCase
	assignUC     assignComplaintUseCase
	historyUC    listHistoryUseCase
	respondUC    addResponseUseCase
	logger       logger.Interface
}

func NewComplaintHandler(
	submitUC submitComplaintUseCase,
	getUC getComplaintUseCase,
	transitionUC transitionComplaintUseCase,
	assignUC assignComplaintUseCase,
	historyUC listHistoryUseCase,
	respondUC addResponseUseCase,
	logger logger.Interface,
) *ComplaintHandler {
	return &ComplaintHandler{
		submitUC:     submitUC,
		getUC:        getUC,
		transitionUC: transitionUC,
		assignUC:     assignUC,
		historyUC:    historyUC,
		respondUC:    respondUC,
		logger:       logger,
	}
}

// The submitting client is always the caller; a client_id in the body is
// not accepted.
type SubmitComplaintRequest struct {
	ProjectID   uint                  `json:"project_id"`
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Category    string                `json:"category"`
	Priority    string                `json:"priority"`
	Attachments []dto.AttachmentInput `json:"attachments"`
}

type TransitionComplaintRequest struct {
	Status  string  `json:"status"`
	Message *string `json:"message"`
}

// AssignComplaintRequest clears the assignment when assignee_id is null or
// omitted.
type AssignComplaintRequest struct {
	AssigneeID *uint `json:"assignee_id"`
}

type AddResponseRequest struct {
	Message     string                `json:"message"`
	Attachments []dto.AttachmentInput `json:"attachments"`
}

// Submit handles POST /api/complaints
func (h *ComplaintHandler) Submit(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SubmitComplaintRequest
	if err := bindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for submit complaint", "error", err, "user_id", userID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.submitUC.Execute(c.Request.Context(), usecases.SubmitComplaintCommand{
		ClientID:    userID,
		ProjectID:   req.ProjectID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Priority:    req.Priority,
		Attachments: req.Attachments,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Complaint submitted successfully")
}

// Get handles GET /api/complaints/:id
func (h *ComplaintHandler) Get(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	complaintID, err := utils.ParseUintParam(c, "id", "complaint")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetComplaintQuery{
		ComplaintID: complaintID,
		ActorID:     userID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Transition handles POST /api/complaints/:id/transitions
func (h *ComplaintHandler) Transition(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	complaintID, err := utils.ParseUintParam(c, "id", "complaint")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req TransitionComplaintRequest
	if err := bindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for transition", "error", err, "complaint_id", complaintID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.transitionUC.Execute(c.Request.Context(), usecases.TransitionComplaintCommand{
		ComplaintID: complaintID,
		NewStatus:   req.Status,
		ActorID:     userID,
		Message:     req.Message,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Complaint status updated successfully", result)
}

// Assign handles POST /api/complaints/:id/assignment
func (h *ComplaintHandler) Assign(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	complaintID, err := utils.ParseUintParam(c, "id", "complaint")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AssignComplaintRequest
	if err := bindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for assign", "error", err, "complaint_id", complaintID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.assignUC.Execute(c.Request.Context(), usecases.AssignComplaintCommand{
		ComplaintID: complaintID,
		AssigneeID:  req.AssigneeID,
		ActorID:     userID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	message := "Complaint assigned successfully"
	if req.AssigneeID == nil {
		message = "Complaint unassigned successfully"
	}
	utils.SuccessResponse(c, http.StatusOK, message, result)
}

// History handles GET /api/complaints/:id/history
func (h *ComplaintHandler) History(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	complaintID, err := utils.ParseUintParam(c, "id", "complaint")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.historyUC.Execute(c.Request.Context(), usecases.ListHistoryQuery{
		ComplaintID: complaintID,
		ActorID:     userID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// AddResponse handles POST /api/complaints/:id/responses
func (h *ComplaintHandler) AddResponse(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	complaintID, err := utils.ParseUintParam(c, "id", "complaint")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddResponseRequest
	if err := bindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for add response", "error", err, "complaint_id", complaintID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.respondUC.Execute(c.Request.Context(), usecases.AddResponseCommand{
		ComplaintID: complaintID,
		AuthorID:    userID,
		Message:     req.Message,
		Attachments: req.Attachments,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Response added successfully")
}
