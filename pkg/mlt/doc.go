// Package mlt wraps the MLT multimedia framework. The Factory owns the
// global MLT repository; Profiles, Producers, Consumers, Filters, and
// Playlists are handles over the corresponding native services, and Frames
// are derived resources pulled from a producer.
//
// Frame pixel buffers are owned by the native frame and rewritten on the
// next render, so Image always copies; there is no borrow policy for
// frames. Wrappers are not safe for concurrent use; callers that share one
// across goroutines must serialize access themselves.
package mlt
