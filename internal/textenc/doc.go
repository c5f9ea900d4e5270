// Package textenc decodes subtitle payloads of unknown encoding.
//
// Decoders are tried in a fixed priority order, strict and specific before
// permissive: UTF-8, UTF-8 with byte-order mark, GBK, GB18030, and finally
// ISO 8859-1 which accepts any byte sequence. Decoding therefore always
// yields some text, but the Latin-1 fallback makes no promise the text is
// semantically correct.
package textenc
