// Package audiofile reads mono speech recordings from container files.
//
// Open sniffs the container from its magic bytes and returns a File exposing
// the stream's Descriptor and a single-pass Source of signed 16-bit samples.
// Supported containers:
//
//   - WAV (RIFF/WAVE, integer PCM 8/16/24/32 bit or 32-bit float) via
//     github.com/go-audio/wav
//   - FLAC via github.com/mewkiz/flac
//   - Ogg Vorbis via github.com/jfreymuth/oggvorbis
//
// Samples of other widths are coerced to 16 bits: unsigned 8-bit is recentred
// and shifted up, wider integers keep their most significant 16 bits, floats
// are scaled by 32768 and saturated. Multichannel streams are interleaved;
// callers that need mono must check Descriptor().Channels themselves.
//
// Example usage:
//
//	f, err := audiofile.Open("hello.wav")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer f.Close()
//	desc := f.Descriptor()
//	src := f.Samples()
package audiofile
