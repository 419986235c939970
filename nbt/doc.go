// Package nbt reads and writes the Named Binary Tag format used by
// Minecraft for world saves, chunk data, and network payloads.
//
// An NBT document is a single named tag at the root, almost always a
// Compound, built from twelve scalar, string, array, list, and compound
// variants (package tag). Three wire encodings exist in the wild:
//
//	BigEndian            Java Edition saves and network traffic
//	LittleEndian         Bedrock Edition world saves
//	NetworkLittleEndian  Bedrock Edition's network protocol, which further
//	                     varint-encodes 32/64-bit integer values and the
//	                     string length
//
// ReadRoot and WriteRoot stream a document through an io.Reader/io.Writer
// under a chosen wire.Encoding; Marshal and Unmarshal wrap them for
// callers holding the whole document in memory. Decode failures are
// reported as *errs.PathError, pinpointing the Compound key or List index
// at which the failure occurred.
package nbt
