package model

import "errors"

// ErrModelUnavailable indicates the external NLP model could not be
// loaded. Fatal at startup; callers should relay install instructions.
var ErrModelUnavailable = errors.New("NLP model unavailable")

// ErrNoProcessorFound indicates no registered document processor
// accepted the input
var ErrNoProcessorFound = errors.New("no suitable processor found for this document type")
