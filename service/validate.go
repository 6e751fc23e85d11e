// Copyright (c) 2025 ALX Polly contributors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package service

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/webmaster254/alx-polly/models"
)

// validatePollInput trims the question and options and checks the content
// rules: non-empty question up to 500 chars, 2-10 non-empty options up to
// 200 chars each. Returns the trimmed values.
func validatePollInput(question string, options []string) (string, []string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", nil, validationErrorf("question is required")
	}
	if utf8.RuneCountInString(question) > models.MaxQuestionLen {
		return "", nil, validationErrorf(fmt.Sprintf("question must be at most %d characters", models.MaxQuestionLen))
	}

	if len(options) < models.MinOptions || len(options) > models.MaxOptions {
		return "", nil, validationErrorf(fmt.Sprintf("polls must have between %d and %d options", models.MinOptions, models.MaxOptions))
	}

	trimmed := make([]string, len(options))
	for i, opt := range options {
		opt = strings.TrimSpace(opt)
		if opt == "" {
			return "", nil, validationErrorf(fmt.Sprintf("option %d is empty", i+1))
		}
		if utf8.RuneCountInString(opt) > models.MaxOptionLen {
			return "", nil, validationErrorf(fmt.Sprintf("option %d must be at most %d characters", i+1, models.MaxOptionLen))
		}
		trimmed[i] = opt
	}

	return question, trimmed, nil
}
