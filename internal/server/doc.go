// Package server hosts the browser surface: an embedded single-page
// form, a JSON conversion API, a websocket channel for live conversion
// while typing, and a health endpoint. It renders the vector diagram as
// SVG so the page stays free of plotting code.
package server
