// Package fabric exposes the fabric index reconciliation pipeline over HTTP.
//
// The feature accepts two uploaded xlsx files, the main sheet to annotate
// and the fabric name index. It runs the match engine from core/match and
// returns either a JSON report (summary, match mask, bounded row preview)
// or the annotated xlsx artifact with matched cells highlighted yellow.
//
// # HTTP Endpoints
//
//   - POST /fabric/match : multipart upload (fields "main", "index"),
//     responds with a JSON match report for on-screen preview.
//   - POST /fabric/match/export : same upload, responds with the annotated
//     spreadsheet as an attachment.
//
// Uploads are processed per request; nothing is persisted between calls.
package fabric
