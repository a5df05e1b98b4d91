// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides token generation utilities for form protection.

# CSRF Tokens

Forms are protected with a signed double-submit token. Each browser gets
a random nonce in a cookie; forms carry an HMAC of that nonce:

	nonce, err := auth.GenerateNonce()
	token := auth.SignFormToken(nonce, secret)
	err := auth.ValidateFormToken(nonce, token, secret)

A cross-site form can send the cookie but cannot read it, so it cannot
produce the matching token. Tokens are URL-safe base64 without padding.

# ID Generation

Random hex IDs:

	id, err := auth.GenerateID(16)  // 32 hex characters

# IP Hashing

For logging voters without storing addresses:

	hash := auth.HashIP(ipAddress, salt)

Returns first 8 bytes (16 hex chars) of HMAC-SHA256.
*/
package auth
