//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package types

import "fmt"

// Direction is a step on the board expressed in bit-index deltas, so that
// Square + Direction lands on the target square before any edge check.
type Direction int8

// Compass directions. Knight-shaped directions are composed from these.
//noinspection GoUnusedConst
const (
	North     Direction = 8
	East      Direction = 1
	South     Direction = -North
	West      Direction = -East
	Northeast Direction = North + East
	Southeast Direction = South + East
	Southwest Direction = South + West
	Northwest Direction = North + West

	NN Direction = North + North
	SS Direction = South + South

	NNE Direction = North + Northeast
	NNW Direction = North + Northwest
	SSE Direction = South + Southeast
	SSW Direction = South + Southwest
	NEE Direction = East + Northeast
	NWW Direction = West + Northwest
	SEE Direction = East + Southeast
	SWW Direction = West + Southwest
)

// Str returns a short mnemonic for the direction, used in diagnostics.
func (d Direction) Str() string {
	switch d {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	case Northeast:
		return "NE"
	case Southeast:
		return "SE"
	case Southwest:
		return "SW"
	case Northwest:
		return "NW"
	case NN:
		return "NN"
	case SS:
		return "SS"
	case NNE:
		return "NNE"
	case NNW:
		return "NNW"
	case SSE:
		return "SSE"
	case SSW:
		return "SSW"
	case NEE:
		return "NEE"
	case NWW:
		return "NWW"
	case SEE:
		return "SEE"
	case SWW:
		return "SWW"
	default:
		panic(fmt.Sprintf("invalid direction %d", d))
	}
}
