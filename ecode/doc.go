// Package ecode defines the error taxonomy shared by the transport, the API
// wrappers and the query layer.
//
// Every transport failure is normalized at the HTTP boundary into a single
// *Error value:
//
//	401          -> AuthExpired (also forces logout)
//	400          -> BadRequest, server message passed through when present
//	404          -> NotFound
//	>= 500       -> ServerErr
//	other status -> Unknown, server message passed through when present
//	no response  -> NetworkErr
//
// Callers branch on the code rather than the message:
//
//	if ecode.Is(err, ecode.NotFound) {
//	    ...
//	}
//
// Messages are localized:
//
//	ecode.SetLanguage("ko")
//	ecode.Text(ecode.NotFound) // "요청한 데이터를 찾을 수 없습니다."
package ecode
