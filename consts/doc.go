// Package consts defines application-wide constants: header keys, persisted
// storage keys, post limits, the forbidden-word denylist and pagination defaults.
//
// Limits are shared by the client-side validators and the mock server so both
// sides of the wire agree:
//
//	consts.MaxTitleLength // 80
//	consts.MaxBodyLength  // 2000
//	consts.MaxTags        // 5
//	consts.MaxTagLength   // 24
package consts
