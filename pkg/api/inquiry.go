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

// postInquiry godoc
// @Summary      Submit Inquiry
// @Description  Creates a sales ticket from a completed inquiry questionnaire
// @Accept       json
// @Produce      json
// @Param        payload body model.InquiryPayload true "inquiry submission"
// @Success      201 {object} model.InquiryCreated
// @Failure      400 {object} model.InquiryResponse
// @Failure      500 {object} model.InquiryResponse
// @Router       /inquiry [POST]
func postInquiry(ctrl *controller.Controller) (string, string, gin.HandlerFunc) {
	return http.MethodPost, model.InquiryPath, func(gc *gin.Context) {
		var payload model.InquiryPayload
		if err := gc.ShouldBindJSON(&payload); err != nil {
			gc.JSON(http.StatusBadRequest, model.InquiryResponse{
				Message: "Invalid JSON body. Please ensure you are sending valid JSON.",
			})
			return
		}

		ticketID, err := ctrl.SubmitInquiry(gc.Request.Context(), payload)
		if err != nil {
			se := model.AsSubmissionError(err, "An unexpected error occurred while submitting your inquiry.")
			gc.JSON(se.StatusCode, model.InquiryResponse{Message: se.Message})
			return
		}

		gc.JSON(http.StatusCreated, model.InquiryCreated{
			Message:  "Your inquiry has been submitted successfully! Our team will be in touch.",
			TicketID: ticketID,
		})
	}
}
