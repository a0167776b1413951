// Package codec converts ticks and candles to their fixed-width little-endian
// records and the base64 text stored in the backend.
package codec

import (
	"encoding/base64"
	"encoding/binary"
	"math"
	"strconv"

	v1 "github.com/zetamarkets/pyth-history/internal/domain/candle/v1"
	"github.com/zetamarkets/pyth-history/pkg/errors"
)

// Coder converts a record to and from its stored text form.
type Coder[T any] interface {
	Encode(record T) (string, error)
	Decode(text string) (T, error)
}

// TickCoder is the Coder for ticks.
type TickCoder struct{}

func (TickCoder) Encode(tick v1.Tick) (string, error) { return EncodeTick(tick) }
func (TickCoder) Decode(text string) (v1.Tick, error) { return DecodeTick(text) }

// CandleCoder is the Coder for candles.
type CandleCoder struct{}

func (CandleCoder) Encode(candle v1.Candle) (string, error) { return EncodeCandle(candle) }
func (CandleCoder) Decode(text string) (v1.Candle, error)   { return DecodeCandle(text) }

var (
	_ Coder[v1.Tick]   = TickCoder{}
	_ Coder[v1.Candle] = CandleCoder{}
)

// EncodeTick lays a tick out as price[0:4) confidence[4:8) timestamp[8:14) status[14].
func EncodeTick(tick v1.Tick) (string, error) {
	if err := checkTimestamp(tick.Timestamp, "timestamp"); err != nil {
		return "", err
	}

	buf := make([]byte, v1.TickRecordSize)
	putFloat32(buf[0:4], tick.Price)
	putFloat32(buf[4:8], tick.Confidence)
	putUint48(buf[8:14], tick.Timestamp)
	buf[14] = byte(tick.Status)

	return base64.StdEncoding.EncodeToString(buf), nil
}

// DecodeTick parses the text produced by EncodeTick.
func DecodeTick(text string) (v1.Tick, error) {
	buf, err := decodeRecord(text, v1.TickRecordSize, "tick")
	if err != nil {
		return v1.Tick{}, err
	}

	return v1.Tick{
		Price:      float32At(buf[0:4]),
		Confidence: float32At(buf[4:8]),
		Timestamp:  uint48At(buf[8:14]),
		Status:     v1.PriceStatus(buf[14]),
	}, nil
}

// EncodeCandle lays a candle out as open, close, high, low float32s followed by
// start and end uint48s. Bytes [28:36) are reserved and written as zero.
func EncodeCandle(candle v1.Candle) (string, error) {
	if err := checkTimestamp(candle.Start, "start"); err != nil {
		return "", err
	}
	if err := checkTimestamp(candle.End, "end"); err != nil {
		return "", err
	}

	buf := make([]byte, v1.CandleRecordSize)
	putFloat32(buf[0:4], candle.Open)
	putFloat32(buf[4:8], candle.Close)
	putFloat32(buf[8:12], candle.High)
	putFloat32(buf[12:16], candle.Low)
	putUint48(buf[16:22], candle.Start)
	putUint48(buf[22:28], candle.End)

	return base64.StdEncoding.EncodeToString(buf), nil
}

// DecodeCandle parses the text produced by EncodeCandle. Reserved bytes are ignored.
func DecodeCandle(text string) (v1.Candle, error) {
	buf, err := decodeRecord(text, v1.CandleRecordSize, "candle")
	if err != nil {
		return v1.Candle{}, err
	}

	return v1.Candle{
		Open:  float32At(buf[0:4]),
		Close: float32At(buf[4:8]),
		High:  float32At(buf[8:12]),
		Low:   float32At(buf[12:16]),
		Start: uint48At(buf[16:22]),
		End:   uint48At(buf[22:28]),
	}, nil
}

func decodeRecord(text string, size int, field string) ([]byte, error) {
	buf, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return nil, errors.NewErrorDetailsWithCause("Record is not valid base64", string(errors.MalformedRecordError), field, err)
	}
	if len(buf) != size {
		return nil, errors.NewErrorDetailsWithObject(
			"Record has length "+strconv.Itoa(len(buf))+", want "+strconv.Itoa(size),
			string(errors.MalformedRecordError),
			field,
			text,
		)
	}
	return buf, nil
}

func checkTimestamp(ts uint64, field string) error {
	if ts > v1.MaxTimestamp {
		return errors.NewErrorDetailsWithObject("Timestamp does not fit 48 bits", string(errors.TimestampOverflowError), field, ts)
	}
	return nil
}

func putFloat32(b []byte, v float32) {
	binary.LittleEndian.PutUint32(b, math.Float32bits(v))
}

func float32At(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}

func putUint48(b []byte, v uint64) {
	for i := range 6 {
		b[i] = byte(v >> (8 * i))
	}
}

func uint48At(b []byte) uint64 {
	var v uint64
	for i := range 6 {
		v |= uint64(b[i]) << (8 * i)
	}
	return v
}
