// Package deepspeech binds the libdeepspeech C API.
//
// The binding is built with cgo and needs deepspeech.h and libdeepspeech on
// the include and library paths. *Model satisfies stt.Model; the command
// wires New in as its engine backend.
package deepspeech
