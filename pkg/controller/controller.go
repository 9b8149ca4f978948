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

package controller

import (
	"time"

	"github.com/RAKWireless/help-hub-connector/pkg/configuration"
	"github.com/flosch/pongo2/v6"
	"github.com/go-resty/resty/v2"
)

const defaultZendeskTimeout = 15 * time.Second

type Controller struct {
	config      configuration.Config
	client      *resty.Client
	inquiryTmpl *pongo2.Template
	supportTmpl *pongo2.Template
}

func New(config configuration.Config) (*Controller, error) {
	timeout := time.Duration(config.ZendeskTimeout)
	if timeout <= 0 {
		timeout = defaultZendeskTimeout
	}

	client := resty.New().
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json")

	inquiryTmpl, err := pongo2.FromString(inquiryBodyTemplate)
	if err != nil {
		return nil, err
	}
	supportTmpl, err := pongo2.FromString(supportBodyTemplate)
	if err != nil {
		return nil, err
	}

	return &Controller{
		config:      config,
		client:      client,
		inquiryTmpl: inquiryTmpl,
		supportTmpl: supportTmpl,
	}, nil
}
