/*
 * Copyright 2026 RAKwireless Technology Limited
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package api

import (
	"net/http"

	"github.com/RAKWireless/help-hub-connector/pkg/controller"
	"github.com/RAKWireless/help-hub-connector/pkg/model"
	"github.com/gin-gonic/gin"
)

// postSupportTicket godoc
// @Summary      Submit Support Ticket
// @Description  Creates a tech support ticket from a completed support form
// @Accept       json
// @Produce      json
// @Param        payload body model.SupportPayload true "support submission"
// @Success      201 {object} model.SupportCreated
// @Failure      400 {object} model.SupportResponse
// @Failure      500 {object} model.SupportResponse
// @Router       /support-ticket [POST]
func postSupportTicket(ctrl *controller.Controller) (string, string, gin.HandlerFunc) {
	return http.MethodPost, model.SupportTicketPath, func(gc *gin.Context) {
		var payload model.SupportPayload
		if err := gc.ShouldBindJSON(&payload); err != nil {
			gc.JSON(http.StatusBadRequest, model.SupportResponse{
				Success: false,
				Message: "Invalid request body.",
			})
			return
		}

		ticketID, err := ctrl.SubmitSupport(gc.Request.Context(), payload)
		if err != nil {
			se := model.AsSubmissionError(err, "An unexpected error occurred.")
			gc.JSON(se.StatusCode, model.SupportResponse{Success: false, Message: se.Message})
			return
		}

		gc.JSON(http.StatusCreated, model.SupportCreated{
			Success:  true,
			Message:  "Support request submitted successfully!",
			TicketID: ticketID,
		})
	}
}
