// Package protocol defines the JSON messages exchanged between the thin
// browser client and the server over a WebSocket.
//
// Every frame is a single JSON text message.
//
// Client to server, one per DOM event on an element carrying data-hid:
//
//	{"seq":3,"type":"input","hid":"h4","value":"+7 (999"}
//
// Server to client, after each event:
//
//	{"type":"update","seq":3,"html":"<div id=\"contact\" ...>","open":true,
//	 "focus":"phone","events":[{"name":"contact:toast","data":{...}}]}
//
// A frame that cannot be decoded is answered with an error message and the
// connection stays open unless the error is fatal:
//
//	{"type":"error","error":{"code":"invalid_event","message":"..."}}
package protocol
