package main

import (
	"encoding/binary"
	"io"

	surveyd "github.com/lexuandaibn123/surveyhub/cmd/surveyd/app"
	"github.com/lexuandaibn123/surveyhub/client"
)

// writeTx serialize the transaction using a protocol buffer. First bytes
// written contain the information how much space the transaction takes.
// Size information is required to be able to stream the messages:
// https://developers.google.com/protocol-buffers/docs/techniques#streaming
func writeTx(w io.Writer, tx *surveyd.Tx) (int, error) {
	b, err := tx.Marshal()
	if err != nil {
		return 0, err
	}

	var size [txHeaderSize]byte
	binary.BigEndian.PutUint32(size[:], uint32(len(b)))

	if n, err := w.Write(size[:]); err != nil {
		return n, err
	}
	if n, err := w.Write(b); err != nil {
		return n + txHeaderSize, err
	}
	return txHeaderSize + len(b), nil
}

func readTx(r io.Reader) (*surveyd.Tx, int, error) {
	// When serialized using writeTx function, first bytes contain
	// information about the actual size of the transaction message.
	var size [txHeaderSize]byte
	if n, err := io.ReadFull(r, size[:]); err != nil {
		return nil, n, err
	}
	msgSize := binary.BigEndian.Uint32(size[:])
	raw := make([]byte, msgSize)
	if n, err := io.ReadFull(r, raw); err != nil {
		return nil, n + txHeaderSize, err
	}

	tx, err := client.ParseTx(raw)
	if err != nil {
		return nil, int(msgSize + txHeaderSize), err
	}
	return tx, int(msgSize + txHeaderSize), nil
}

const txHeaderSize = 4

// newClient returns a client connected to the tendermint node at the given
// address. Tests replace it.
var newClient = func(tmAddr string) client.Client {
	return client.NewClient(client.NewHTTPConnection(tmAddr))
}
