// Package share publishes a host's scene to read-only LAN viewers over
// websockets, with mDNS discovery of running hosts.
package share

import (
	"encoding/json"
	"fmt"

	"ShapeBoard/internal/shape"
)

// Message is the wire form of one shape, one JSON object per websocket
// message. Circles carry radius, rectangles carry width/height.
type Message struct {
	Kind   shape.Kind  `json:"kind"`
	ID     string      `json:"id"`
	X      int         `json:"x"`
	Y      int         `json:"y"`
	Radius int         `json:"radius,omitempty"`
	Width  int         `json:"width,omitempty"`
	Height int         `json:"height,omitempty"`
	Color  shape.Color `json:"color"`
}

func Encode(s shape.Shape) ([]byte, error) {
	var msg Message
	switch v := s.(type) {
	case *shape.Circle:
		msg = Message{
			Kind: shape.KindCircle, ID: v.ShapeID,
			X: v.X, Y: v.Y, Radius: v.Radius, Color: v.Fill,
		}
	case *shape.Rectangle:
		msg = Message{
			Kind: shape.KindRectangle, ID: v.ShapeID,
			X: v.X, Y: v.Y, Width: v.Width, Height: v.Height, Color: v.Fill,
		}
	default:
		return nil, fmt.Errorf("%w: %q", shape.ErrUnknownKind, s.Kind())
	}
	return json.Marshal(msg)
}

func Decode(data []byte) (shape.Shape, error) {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	switch msg.Kind {
	case shape.KindCircle:
		return &shape.Circle{
			ShapeID: msg.ID, X: msg.X, Y: msg.Y,
			Radius: msg.Radius, Fill: msg.Color,
		}, nil
	case shape.KindRectangle:
		return &shape.Rectangle{
			ShapeID: msg.ID, X: msg.X, Y: msg.Y,
			Width: msg.Width, Height: msg.Height, Fill: msg.Color,
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", shape.ErrUnknownKind, msg.Kind)
	}
}
