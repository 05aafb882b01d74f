// Package respond keeps a document and its HTTP response in agreement.
//
// ApplyTo negotiates the request signals, sets the document render mode and
// returns the status and headers the response must carry. Write does the
// same against a live http.ResponseWriter. Run one of them before the
// document renders anything.
package respond
