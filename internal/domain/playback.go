package domain

// PlaybackState is the transport state of the single current playback
// target. Current is a weak reference: deleting the podcast it points
// at clears both the reference and the playing flag together, so a
// dangling target is never observable. It never crosses the wire
// directly; the HTTP layer maps it onto its own DTO.
type PlaybackState struct {
	Current     *Podcast
	Playing     bool
	CurrentTime float64 // seconds into the track
	TrackLength float64 // seconds, from audio metadata
}
