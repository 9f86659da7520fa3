package crypto

// Wipe overwrites b with zeros. Best-effort hygiene for buffers that held
// key material or plaintext; the runtime is free to copy slices around, so
// this limits exposure rather than guaranteeing erasure.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
