// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "github.com/google/uuid"

// maxIDAttempts bounds the retries of [UniqueID].
const maxIDAttempts = 8

// IDGenerator issues identifiers for new records.
type IDGenerator interface {
	Generate() string
}

// UUIDGenerator issues rule identifiers. Version 7 ids sort by creation
// time, which keeps exported rule files readable.
type UUIDGenerator struct {
	newV7 func() (uuid.UUID, error)
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{newV7: uuid.NewV7}
}

// Generate returns a version 7 id, or a random version 4 id when the clock
// source fails.
func (g *UUIDGenerator) Generate() string {
	id, err := g.newV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// UniqueID draws from g until it finds an id for which taken reports false.
// After maxIDAttempts collisions the last candidate is returned.
func UniqueID(g IDGenerator, taken func(id string) bool) string {
	id := g.Generate()
	for i := 1; i < maxIDAttempts && taken(id); i++ {
		id = g.Generate()
	}
	return id
}
