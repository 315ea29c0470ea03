// Package media decides how a raw media reference can be played.
//
// # Classification
//
// [Classify] inspects an arbitrary URL string and assigns it exactly one
// [Kind]: a YouTube video, an embeddable Suno playlist, directly streamable
// audio, or unsupported. Classification is derived and never stored; call
// sites recompute it from the source URL on demand. Malformed input always
// classifies as [KindUnsupported], never as an error.
//
// # Embedding and playability
//
// [ResolveEmbed] turns a classification into a provider embed URL for the
// modal player, when one exists. [Classifier.IsPlayableInApp] reports whether
// a track's source resolves to directly streamable audio, which is the only
// path into the in-app playback queue.
package media
