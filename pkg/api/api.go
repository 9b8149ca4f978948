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
	"context"
	"errors"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/RAKWireless/help-hub-connector/pkg/configuration"
	"github.com/RAKWireless/help-hub-connector/pkg/controller"
	"github.com/RAKWireless/help-hub-connector/pkg/log"
	"github.com/RAKWireless/help-hub-connector/pkg/model"
	gin_mw "github.com/SENERGY-Platform/gin-middleware"
	"github.com/SENERGY-Platform/go-service-base/struct-logger/attributes"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
)

const healthCheckPath = "/health-check"

var routes = gin_mw.Routes[*controller.Controller]{
	getHealthCheck,
	getSwaggerDoc,
	postInquiry,
	postSupportTicket,
}

// Start godoc
// @title Help Hub Intake Connector API
// @license.name Apache-2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @BasePath /
func Start(ctx context.Context, wg *sync.WaitGroup, config configuration.Config, controller *controller.Controller) error {
	gin.SetMode(gin.ReleaseMode)
	httpHandler := NewRouter(controller)
	if httpHandler == nil {
		return errors.New("unable to set up routes")
	}

	httpServer := &http.Server{
		Addr:    ":" + strconv.FormatUint(uint64(config.ServerPort), 10),
		Handler: httpHandler}

	wg.Go(func() {
		log.Logger.Info("starting http server")
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			log.Logger.Error("starting server failed", attributes.ErrorKey, err)
		}
	})

	wg.Go(func() {
		<-ctx.Done()
		log.Logger.Info("stopping http server")
		ctxWt, cf2 := context.WithTimeout(context.Background(), time.Second*5)
		defer cf2()
		if err := httpServer.Shutdown(ctxWt); err != nil {
			log.Logger.Error("stopping server failed", attributes.ErrorKey, err)
		} else {
			log.Logger.Info("http server stopped")
		}
	})

	return nil
}

// NewRouter builds the gin engine with the full middleware chain. Split from
// Start so router tests can drive it through httptest.
func NewRouter(controller *controller.Controller) *gin.Engine {
	httpHandler := gin.New()
	httpHandler.Use(
		gin_mw.StructLoggerHandlerWithDefaultGenerators(
			log.Logger.With(attributes.LogRecordTypeKey, attributes.HttpAccessLogRecordTypeVal),
			attributes.Provider,
			[]string{healthCheckPath},
			nil,
		),
		requestid.New(requestid.WithCustomHeaderStrKey("X-Request-ID")),
		corsHandler(),
		gin_mw.ErrorHandler(model.GetStatusCode, ", "),
		gin_mw.StructRecoveryHandler(log.Logger, gin_mw.DefaultRecoveryFunc),
	)
	httpHandler.HandleMethodNotAllowed = true
	httpHandler.NoMethod(methodNotAllowed)

	rg := httpHandler.Group("")
	_, err := routes.Set(controller, rg)
	if err != nil {
		log.Logger.Error("unable to set up routes", attributes.ErrorKey, err)
		return nil
	}
	return httpHandler
}

// corsHandler sets the permissive intake CORS headers on every response and
// short-circuits preflight requests with an empty 200.
func corsHandler() gin.HandlerFunc {
	return func(gc *gin.Context) {
		gc.Header("Access-Control-Allow-Origin", "*")
		gc.Header("Access-Control-Allow-Methods", "POST, OPTIONS")
		gc.Header("Access-Control-Allow-Headers", "Content-Type")
		if gc.Request.Method == http.MethodOptions {
			gc.Header("Content-Type", "application/json")
			gc.AbortWithStatus(http.StatusOK)
			return
		}
		gc.Next()
	}
}

func methodNotAllowed(gc *gin.Context) {
	gc.Header("Allow", "POST, OPTIONS")
	if gc.Request.URL.Path == model.SupportTicketPath {
		gc.JSON(http.StatusMethodNotAllowed, model.SupportResponse{Success: false, Message: "Method Not Allowed."})
		return
	}
	gc.JSON(http.StatusMethodNotAllowed, model.InquiryResponse{Message: "Method Not Allowed. Please use POST."})
}
