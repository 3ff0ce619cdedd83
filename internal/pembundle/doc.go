// Copyright 2020 Adam Chalkley
//
// https://github.com/atc0005/certpath
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

// Package pembundle loads PEM certificate bundles from disk, seeding both
// the path discovery engine's certificate store and a validator's trust
// anchor pool from the same file format.
package pembundle
