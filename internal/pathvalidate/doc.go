// Copyright 2020 Adam Chalkley
//
// https://github.com/atc0005/certpath
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

// Package pathvalidate provides a pathfind.PathValidator built on
// crypto/x509.Certificate.Verify, rendering the Found/NotFound verdict the
// search engine itself stays deliberately ignorant of. It also reports the
// chain-shape problems (misordering, expiry) that internal/certs used to
// check for, ahead of the cryptographic verification step, so a rejected
// candidate's reason is specific rather than just "verification failed".
package pathvalidate
