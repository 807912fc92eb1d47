// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/google/uuid"
)

// OperationKind is the type of a mutation waiting for replay.
type OperationKind string

const (
	OperationCreate OperationKind = "CREATE"
	OperationUpdate OperationKind = "UPDATE"
	OperationDelete OperationKind = "DELETE"
)

// PendingOperation is a mutation recorded while the server could not be
// reached. Operations are replayed in the order they were enqueued.
type PendingOperation struct {
	// ID uniquely identifies the operation inside the queue.
	ID string `json:"id"`

	Kind OperationKind `json:"kind"`

	// TargetID is the record the operation applies to. Empty for CREATE.
	TargetID MovieID `json:"targetId,omitempty"`

	// TempID is the temporary identifier given to the local record
	// produced by a CREATE.
	TempID MovieID `json:"tempId,omitempty"`

	// Payload carries the record fields. Nil for DELETE.
	Payload *MovieFields `json:"payload,omitempty"`

	EnqueuedAt time.Time `json:"enqueuedAt"`
}

// NewCreateOperation records a create that produced a local record with tempID.
func NewCreateOperation(tempID MovieID, payload MovieFields) PendingOperation {
	return PendingOperation{
		ID:         uuid.NewString(),
		Kind:       OperationCreate,
		TempID:     tempID,
		Payload:    &payload,
		EnqueuedAt: time.Now().UTC(),
	}
}

// NewUpdateOperation records an update of target.
func NewUpdateOperation(target MovieID, payload MovieFields) PendingOperation {
	return PendingOperation{
		ID:         uuid.NewString(),
		Kind:       OperationUpdate,
		TargetID:   target,
		Payload:    &payload,
		EnqueuedAt: time.Now().UTC(),
	}
}

// NewDeleteOperation records a delete of target.
func NewDeleteOperation(target MovieID) PendingOperation {
	return PendingOperation{
		ID:         uuid.NewString(),
		Kind:       OperationDelete,
		TargetID:   target,
		EnqueuedAt: time.Now().UTC(),
	}
}

// SyncReport summarizes one replay pass.
type SyncReport struct {
	// Replayed counts operations the server accepted.
	Replayed int `json:"replayed"`
	// Rejected counts operations dropped because the server refused them.
	Rejected int `json:"rejected"`
	// Remaining is the queue length after the pass.
	Remaining int `json:"remaining"`
}
