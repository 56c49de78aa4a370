// SPDX-License-Identifier: MIT

package agglomerative

import "errors"

var (
	// ErrUnknownStrategy is returned by ParseStrategy for an unrecognized name.
	ErrUnknownStrategy = errors.New("agglomerative: unknown strategy")

	// ErrMatrix wraps any failure to build the clustering matrix.
	ErrMatrix = errors.New("agglomerative: cannot build clustering matrix")
)
