// Package server exposes the analysis engine over HTTP for the browser UI.
//
// The API is small: POST /api/v1/analyze runs an analysis on a base64
// image, GET /api/v1/profile/tdee computes daily energy needs, and
// GET /api/v1/healthz reports liveness. Error responses carry a stable
// machine-readable kind so the UI can branch without parsing messages.
package server
