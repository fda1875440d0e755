/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package movegen contains functionality to create moves on a chess
// position: pseudo legal generation restricted by from/to square masks,
// legal move filtering and perft-style counting.
package movegen

import (
	"regexp"
	"strings"

	"github.com/op/go-logging"

	"github.com/cosmobobak/chesscore-go/internal/attacks"
	myLogging "github.com/cosmobobak/chesscore-go/internal/logging"
	"github.com/cosmobobak/chesscore-go/internal/moveslice"
	"github.com/cosmobobak/chesscore-go/internal/position"
	. "github.com/cosmobobak/chesscore-go/internal/types"
)

var log *logging.Logger

// Movegen holds reusable move buffers so that repeated calls on the
// same goroutine do not allocate. Create new instances via NewMoveGen();
// the zero value is not usable.
type Movegen struct {
	pseudoLegalMoves *moveslice.MoveSlice
	legalMoves       *moveslice.MoveSlice
	atk              *attacks.Attacks
}

// //////////////////////////////////////////////////////
// // Public
// //////////////////////////////////////////////////////

// GenMode restricts generation to captures, non captures, or both.
type GenMode int

// GenMode values for generation.
const (
	GenZero   GenMode = 0b00
	GenCap    GenMode = 0b01
	GenNonCap GenMode = 0b10
	GenAll    GenMode = 0b11
)

// NewMoveGen creates a new instance of a move generator.
func NewMoveGen() *Movegen {
	if log == nil {
		log = myLogging.GetLog()
	}
	attacks.Setup()
	return &Movegen{
		pseudoLegalMoves: moveslice.NewMoveSlice(MaxMoves),
		legalMoves:       moveslice.NewMoveSlice(MaxMoves),
		atk:              attacks.NewAttacks(),
	}
}

// GeneratePseudoLegalMoves generates pseudo legal moves for the next
// player, restricted to moves whose origin square is in fromMask and
// whose destination square is in toMask (pass BbAll for both to generate
// unrestricted). Does not check if the king is left in check or if it
// passes an attacked square when castling.
func (mg *Movegen) GeneratePseudoLegalMoves(p *position.Position, mode GenMode, fromMask, toMask Bitboard) *moveslice.MoveSlice {
	mg.pseudoLegalMoves.Clear()
	mg.atk.Compute(p)
	mg.generatePawnMoves(p, mode, fromMask, toMask, mg.pseudoLegalMoves)
	mg.generateCastling(p, mode, fromMask, toMask, mg.pseudoLegalMoves)
	mg.generateKingMoves(p, mode, fromMask, toMask, mg.pseudoLegalMoves)
	mg.generateMoves(p, mode, fromMask, toMask, mg.pseudoLegalMoves)
	return mg.pseudoLegalMoves
}

// GenerateLegalMoves generates legal moves for the next player restricted
// to fromMask/toMask the same way GeneratePseudoLegalMoves is.
//
// When the side to move is not in check, ordinary (non castling,
// non en passant, non king) moves are filtered using a precomputed table
// of absolutely pinned squares: a pinned piece may only move within the
// ray between the king and its pinner, which is a fast, allocation free
// check. King moves, castling, en passant and any position where the
// side to move is in check fall back to position.IsLegalMove, which
// proves legality by making the move, checking the king and unmaking it.
// This hybrid is cheaper than a full make/unmake pass over the common
// case while still being exact on the harder cases (x-ray king moves,
// the en passant horizontal pin, double check evasions).
func (mg *Movegen) GenerateLegalMoves(p *position.Position, mode GenMode, fromMask, toMask Bitboard) *moveslice.MoveSlice {
	mg.legalMoves.Clear()
	mg.GeneratePseudoLegalMoves(p, mode, fromMask, toMask)

	if p.HasCheck() {
		mg.pseudoLegalMoves.FilterCopy(mg.legalMoves, func(i int) bool {
			return p.IsLegalMove(mg.pseudoLegalMoves.At(i))
		})
		return mg.legalMoves
	}

	pinned := computePinned(p)
	mg.pseudoLegalMoves.FilterCopy(mg.legalMoves, func(i int) bool {
		m := mg.pseudoLegalMoves.At(i)
		switch m.MoveType() {
		case Castling, EnPassant:
			return p.IsLegalMove(m)
		}
		if p.GetPiece(m.From()).TypeOf() == King {
			return p.IsLegalMove(m)
		}
		if rays := pinned[m.From()]; rays != BbZero {
			return rays.Has(m.To())
		}
		return true
	})
	return mg.legalMoves
}

// computePinned returns, indexed by square, the bitboard of destination
// squares a piece pinned on that square may still move to (the ray
// between the king and the pinning slider, plus the pinner itself).
// Squares holding no pinned piece map to BbZero.
//
// Candidates are found cheaply with GetPseudoAttacks/Intermediate (a pinned
// piece must sit alone on the ray between the king and a same-line enemy
// slider); whether that ray is actually a pin is then confirmed by asking
// attacks.RevealedAttacks what attacks the king square once the candidate
// is removed from the board, the same "pretend this piece isn't there"
// query RevealedAttacks exists for.
func computePinned(p *position.Position) [SqLength]Bitboard {
	var pinned [SqLength]Bitboard

	us := p.NextPlayer()
	them := us.Flip()
	kingSq := p.KingSquare(us)
	occupiedAll := p.OccupiedAll()

	candidates := p.OccupiedBb(us) & (GetPseudoAttacks(Rook, kingSq) | GetPseudoAttacks(Bishop, kingSq))
	for candidates != BbZero {
		candidateSq := candidates.PopLsb()
		withoutCandidate := occupiedAll &^ candidateSq.Bb()
		pinners := attacks.RevealedAttacks(p, kingSq, withoutCandidate, them)
		if pinners == BbZero {
			continue
		}
		pinnerSq := pinners.Lsb()
		pinned[candidateSq] = Intermediate(kingSq, pinnerSq) | pinnerSq.Bb()
	}
	return pinned
}

// HasLegalMove determines if we have at least one legal move. We only have
// to find one legal move. We search for any KING, PAWN, KNIGHT, BISHOP,
// ROOK, QUEEN move and return immediately if we found one. The order of
// search is approx from the most likely to the least likely.
func (mg *Movegen) HasLegalMove(p *position.Position) bool {

	nextPlayer := p.NextPlayer()
	nextPlayerBb := p.OccupiedBb(nextPlayer)

	// KING
	// We do not need to check castling as possible castling implies King or Rook moves
	kingSquare := p.KingSquare(nextPlayer)
	tmpMoves := GetPseudoAttacks(King, kingSquare) &^ nextPlayerBb
	for tmpMoves != 0 {
		toSquare := tmpMoves.PopLsb()
		if p.IsLegalMove(CreateMove(kingSquare, toSquare, Normal, PtNone)) {
			return true
		}
	}

	myPawns := p.PiecesBb(nextPlayer, Pawn)
	opponentBb := p.OccupiedBb(nextPlayer.Flip())

	// PAWN
	// normal pawn captures to the west (includes promotions)
	tmpMoves = ShiftBitboard(myPawns, nextPlayer.MoveDirection()+West) & opponentBb
	for tmpMoves != 0 {
		toSquare := tmpMoves.PopLsb()
		fromSquare := toSquare.To(nextPlayer.Flip().MoveDirection() + East)
		if p.IsLegalMove(CreateMove(fromSquare, toSquare, Normal, PtNone)) {
			return true
		}
	}

	// normal pawn captures to the east (includes promotions)
	tmpMoves = ShiftBitboard(myPawns, nextPlayer.MoveDirection()+East) & opponentBb
	for tmpMoves != 0 {
		toSquare := tmpMoves.PopLsb()
		fromSquare := toSquare.To(nextPlayer.Flip().MoveDirection() + West)
		if p.IsLegalMove(CreateMove(fromSquare, toSquare, Normal, PtNone)) {
			return true
		}
	}

	occupiedBb := p.OccupiedAll()

	// pawn pushes - check step one to unoccupied squares
	// don't have to test double steps as they would be redundant to single steps
	// for the purpose of finding at least one legal move
	tmpMoves = ShiftBitboard(myPawns, nextPlayer.MoveDirection()) &^ occupiedBb
	for tmpMoves != 0 {
		toSquare := tmpMoves.PopLsb()
		fromSquare := toSquare.To(nextPlayer.Flip().MoveDirection())
		if p.IsLegalMove(CreateMove(fromSquare, toSquare, Normal, PtNone)) {
			return true
		}
	}

	// OFFICERS
	for pt := Knight; pt <= Queen; pt++ {
		pieces := p.PiecesBb(nextPlayer, pt)
		for pieces != 0 {
			fromSquare := pieces.PopLsb()
			moves := GetPseudoAttacks(pt, fromSquare) &^ nextPlayerBb
			for moves != 0 {
				toSquare := moves.PopLsb()
				if pt > Knight { // sliding pieces
					if Intermediate(fromSquare, toSquare)&occupiedBb == 0 {
						if p.IsLegalMove(CreateMove(fromSquare, toSquare, Normal, PtNone)) {
							return true
						}
					}
				} else { // knight cannot be blocked
					if p.IsLegalMove(CreateMove(fromSquare, toSquare, Normal, PtNone)) {
						return true
					}
				}
			}
		}
	}

	// en passant captures
	enPassantSquare := p.GetEnPassantSquare()
	if enPassantSquare != SqNone {
		// left
		tmpMoves = ShiftBitboard(enPassantSquare.Bb(), nextPlayer.Flip().MoveDirection()+West) & myPawns
		if tmpMoves != 0 {
			fromSquare := tmpMoves.PopLsb()
			if p.IsLegalMove(CreateMove(fromSquare, fromSquare.To(nextPlayer.MoveDirection()+East), EnPassant, PtNone)) {
				return true
			}
		}
		// right
		tmpMoves = ShiftBitboard(enPassantSquare.Bb(), nextPlayer.Flip().MoveDirection()+East) & myPawns
		if tmpMoves != 0 {
			fromSquare := tmpMoves.PopLsb()
			if p.IsLegalMove(CreateMove(fromSquare, fromSquare.To(nextPlayer.MoveDirection()+West), EnPassant, PtNone)) {
				return true
			}
		}
	}

	// no move found
	return false
}

// Regex for UCI notation (UCI)
var regexUciMove = regexp.MustCompile("([a-h][1-8][a-h][1-8])([NBRQnbrq])?")

// GetMoveFromUci generates all legal moves and matches the given UCI
// move string against them. If there is a match the actual move is
// returned, otherwise MoveNone.
//
// As this uses string creation and comparison this is not very efficient.
// Use only when performance is not critical.
func (mg *Movegen) GetMoveFromUci(posPtr *position.Position, uciMove string) Move {
	matches := regexUciMove.FindStringSubmatch(uciMove)
	if matches == nil {
		return MoveNone
	}

	// get the parts from the pattern match
	movePart := matches[1]
	promotionPart := ""
	if len(matches) == 3 {
		// we also allow upper case promotion letters; they are
		// lower-cased to match the output of StringUci
		promotionPart = strings.ToLower(matches[2])
	}

	// check against all legal moves on position
	mg.GenerateLegalMoves(posPtr, GenAll, BbAll, BbAll)
	for _, m := range *mg.legalMoves {
		if m.StringUci() == movePart+promotionPart {
			// move found
			return m
		}
	}
	// move not found
	return MoveNone
}

// regexSanMove recognizes SAN destination squares and castling; it does
// not disambiguate every possible SAN edge case (see GetMoveFromSan).
var regexSanMove = regexp.MustCompile("([NBRQK])?([a-h])?([1-8])?x?([a-h][1-8]|O-O-O|O-O)(=?([NBRQ]))?([!?+#]*)?")

// GetMoveFromSan generates all legal moves and matches the given SAN
// move string against them. If there is a match the actual move is
// returned, otherwise MoveNone.
//
// This covers castling, captures, promotions, and file/rank disambiguation,
// but is not a complete SAN parser (e.g. it does not validate check/mate
// annotation consistency); full SAN parsing is intentionally out of scope.
func (mg *Movegen) GetMoveFromSan(posPtr *position.Position, sanMove string) Move {
	matches := regexSanMove.FindStringSubmatch(sanMove)
	if matches == nil {
		return MoveNone
	}

	// get parts
	pieceType := matches[1]
	disambFile := matches[2]
	disambRank := matches[3]
	toSquare := matches[4]
	promotion := matches[6]

	movesFound := 0
	moveFromSAN := MoveNone

	// check against all legal moves on position
	mg.GenerateLegalMoves(posPtr, GenAll, BbAll, BbAll)
	for _, genMove := range *mg.legalMoves {

		// castling moves
		if genMove.MoveType() == Castling {
			kingToSquare := genMove.To()
			var castlingString string
			switch kingToSquare {
			case SqG1, SqG8:
				castlingString = "O-O"
			case SqC1, SqC8:
				castlingString = "O-O-O"
			default:
				log.Errorf("move type Castling but wrong to square: %s", kingToSquare.String())
				continue
			}
			if castlingString == toSquare {
				moveFromSAN = genMove
				movesFound++
			}
			continue
		}

		// normal moves
		moveTarget := genMove.To().String()
		if moveTarget == toSquare {

			// determine if piece types match - if not skip
			legalPt := posPtr.GetPiece(genMove.From()).TypeOf()
			legalPtChar := legalPt.Char()
			if (len(pieceType) == 0 || legalPtChar != pieceType) &&
				(len(pieceType) != 0 || legalPt != Pawn) {
				continue
			}

			// Disambiguation File
			if len(disambFile) != 0 && genMove.From().FileOf().String() != disambFile {
				continue
			}

			// Disambiguation Rank
			if len(disambRank) != 0 && genMove.From().RankOf().String() != disambRank {
				continue
			}

			// promotion
			if (len(promotion) != 0 && genMove.PromotionType().Char() != promotion) ||
				(len(promotion) == 0 && genMove.MoveType() == Promotion) {
				continue
			}

			// we should have our move if we end up here
			moveFromSAN = genMove
			movesFound++
		}
	}

	// we should only have one move here
	if movesFound > 1 {
		log.Warningf("SAN move %s is ambiguous (%d matches) on %s!", sanMove, movesFound, posPtr.StringFen())
	} else if movesFound == 0 || !moveFromSAN.IsValid() {
		log.Warningf("SAN move not valid! SAN move %s not found on position: %s", sanMove, posPtr.StringFen())
	} else {
		return moveFromSAN
	}
	// no move found
	return MoveNone
}

// ValidateMove validates if a move is a legal move on the given position.
func (mg *Movegen) ValidateMove(p *position.Position, move Move) bool {
	if move == MoveNone {
		return false
	}
	ml := mg.GenerateLegalMoves(p, GenAll, BbAll, BbAll)
	for _, m := range *ml {
		if move == m {
			return true
		}
	}
	return false
}

// //////////////////////////////////////////////////////
// // Private
// //////////////////////////////////////////////////////

func (mg *Movegen) generatePawnMoves(p *position.Position, mode GenMode, fromMask, toMask Bitboard, ml *moveslice.MoveSlice) {

	nextPlayer := p.NextPlayer()
	myPawns := p.PiecesBb(nextPlayer, Pawn) & fromMask
	oppPieces := p.OccupiedBb(nextPlayer.Flip())

	// captures
	if mode&GenCap != 0 {

		// This algorithm shifts the own pawn bitboard in the direction of pawn
		// captures and ANDs it with the opponent's pieces. This gives all
		// possible captures at once; the from-square is recovered with the
		// backward shift.

		var tmpCaptures, promCaptures Bitboard

		for _, dir := range []Direction{West, East} {
			tmpCaptures = ShiftBitboard(myPawns, nextPlayer.MoveDirection()+dir) & oppPieces & toMask
			promCaptures = tmpCaptures & nextPlayer.PromotionRankBb()
			// promotion captures
			for promCaptures != 0 {
				toSquare := promCaptures.PopLsb()
				fromSquare := toSquare.To(nextPlayer.Flip().MoveDirection() - dir)
				ml.PushBack(CreateMove(fromSquare, toSquare, Promotion, Queen))
				ml.PushBack(CreateMove(fromSquare, toSquare, Promotion, Knight))
				ml.PushBack(CreateMove(fromSquare, toSquare, Promotion, Rook))
				ml.PushBack(CreateMove(fromSquare, toSquare, Promotion, Bishop))
			}
			// non promotion pawn captures
			tmpCaptures &= ^nextPlayer.PromotionRankBb()
			for tmpCaptures != 0 {
				toSquare := tmpCaptures.PopLsb()
				fromSquare := toSquare.To(nextPlayer.Flip().MoveDirection() - dir)
				ml.PushBack(CreateMove(fromSquare, toSquare, Normal, PtNone))
			}
		}

		// en passant captures
		enPassantSquare := p.GetEnPassantSquare()
		if enPassantSquare != SqNone && toMask.Has(enPassantSquare) {
			for _, dir := range []Direction{West, East} {
				tmpCaptures = ShiftBitboard(enPassantSquare.Bb(), nextPlayer.Flip().MoveDirection()+dir) & myPawns
				if tmpCaptures != 0 {
					fromSquare := tmpCaptures.PopLsb()
					toSquare := fromSquare.To(nextPlayer.MoveDirection() - dir)
					ml.PushBack(CreateMove(fromSquare, toSquare, EnPassant, PtNone))
				}
			}
		}
	}

	// non captures
	if mode&GenNonCap != 0 {

		// Move own pawns forward one step and keep all on unoccupied squares.
		// Move pawns now on rank 3 (rank 6) another square forward to check
		// for pawn doubles.

		tmpMoves := ShiftBitboard(myPawns, nextPlayer.MoveDirection()) &^ p.OccupiedAll()
		tmpMovesDouble := ShiftBitboard(tmpMoves&nextPlayer.PawnDoubleRank(), nextPlayer.MoveDirection()) &^ p.OccupiedAll() & toMask

		// single pawn steps - promotions first
		promMoves := tmpMoves & nextPlayer.PromotionRankBb() & toMask
		for promMoves != 0 {
			toSquare := promMoves.PopLsb()
			fromSquare := toSquare.To(nextPlayer.Flip().MoveDirection())
			ml.PushBack(CreateMove(fromSquare, toSquare, Promotion, Queen))
			ml.PushBack(CreateMove(fromSquare, toSquare, Promotion, Knight))
			ml.PushBack(CreateMove(fromSquare, toSquare, Promotion, Rook))
			ml.PushBack(CreateMove(fromSquare, toSquare, Promotion, Bishop))
		}
		// double pawn steps
		for tmpMovesDouble != 0 {
			toSquare := tmpMovesDouble.PopLsb()
			fromSquare := toSquare.To(nextPlayer.Flip().MoveDirection()).To(nextPlayer.Flip().MoveDirection())
			ml.PushBack(CreateMove(fromSquare, toSquare, Normal, PtNone))
		}
		// normal single pawn steps
		tmpMoves &= ^nextPlayer.PromotionRankBb()
		tmpMoves &= toMask
		for tmpMoves != 0 {
			toSquare := tmpMoves.PopLsb()
			fromSquare := toSquare.To(nextPlayer.Flip().MoveDirection())
			ml.PushBack(CreateMove(fromSquare, toSquare, Normal, PtNone))
		}
	}
}

func (mg *Movegen) generateCastling(p *position.Position, mode GenMode, fromMask, toMask Bitboard, ml *moveslice.MoveSlice) {
	nextPlayer := p.NextPlayer()
	occupiedBB := p.OccupiedAll()

	// pseudo legal only - does not check whether the king is in check,
	// passes an attacked square, or would land in check; that is resolved
	// by GenerateLegalMoves via position.IsLegalMove.

	if mode&GenNonCap == 0 || p.CastlingRights() == CastlingNone {
		return
	}
	cr := p.CastlingRights()
	if nextPlayer == White {
		if !fromMask.Has(SqE1) {
			return
		}
		if cr.Has(CastlingWhiteOO) && toMask.Has(SqG1) && Intermediate(SqE1, SqH1)&occupiedBB == 0 {
			ml.PushBack(CreateMove(SqE1, SqG1, Castling, PtNone))
		}
		if cr.Has(CastlingWhiteOOO) && toMask.Has(SqC1) && Intermediate(SqE1, SqA1)&occupiedBB == 0 {
			ml.PushBack(CreateMove(SqE1, SqC1, Castling, PtNone))
		}
	} else {
		if !fromMask.Has(SqE8) {
			return
		}
		if cr.Has(CastlingBlackOO) && toMask.Has(SqG8) && Intermediate(SqE8, SqH8)&occupiedBB == 0 {
			ml.PushBack(CreateMove(SqE8, SqG8, Castling, PtNone))
		}
		if cr.Has(CastlingBlackOOO) && toMask.Has(SqC8) && Intermediate(SqE8, SqA8)&occupiedBB == 0 {
			ml.PushBack(CreateMove(SqE8, SqC8, Castling, PtNone))
		}
	}
}

func (mg *Movegen) generateKingMoves(p *position.Position, mode GenMode, fromMask, toMask Bitboard, ml *moveslice.MoveSlice) {
	nextPlayer := p.NextPlayer()
	kingSquareBb := p.PiecesBb(nextPlayer, King) & fromMask
	if kingSquareBb == BbZero {
		return
	}
	fromSquare := kingSquareBb.PopLsb()

	// pseudo attacks include all moves no matter if the king would be in check
	pseudoMoves := GetPseudoAttacks(King, fromSquare) & toMask

	if mode&GenCap != 0 {
		captures := pseudoMoves & p.OccupiedBb(nextPlayer.Flip())
		for captures != 0 {
			toSquare := captures.PopLsb()
			ml.PushBack(CreateMove(fromSquare, toSquare, Normal, PtNone))
		}
	}

	if mode&GenNonCap != 0 {
		nonCaptures := pseudoMoves &^ p.OccupiedAll()
		for nonCaptures != 0 {
			toSquare := nonCaptures.PopLsb()
			ml.PushBack(CreateMove(fromSquare, toSquare, Normal, PtNone))
		}
	}
}

// generateMoves generates knight, bishop, rook and queen moves by reading
// the attack sets mg.atk.Compute built for this position in
// GeneratePseudoLegalMoves, rather than recomputing each piece's attacks
// here with a second GetAttacksBb call.
func (mg *Movegen) generateMoves(p *position.Position, mode GenMode, fromMask, toMask Bitboard, ml *moveslice.MoveSlice) {
	nextPlayer := p.NextPlayer()
	occupiedBb := p.OccupiedAll()

	for pt := Knight; pt <= Queen; pt++ {
		pieces := p.PiecesBb(nextPlayer, pt) & fromMask

		for pieces != 0 {
			fromSquare := pieces.PopLsb()

			moves := mg.atk.From[nextPlayer][fromSquare] & toMask

			if mode&GenCap != 0 {
				captures := moves & p.OccupiedBb(nextPlayer.Flip())
				for captures != 0 {
					toSquare := captures.PopLsb()
					ml.PushBack(CreateMove(fromSquare, toSquare, Normal, PtNone))
				}
			}

			if mode&GenNonCap != 0 {
				nonCaptures := moves &^ occupiedBb
				for nonCaptures != 0 {
					toSquare := nonCaptures.PopLsb()
					ml.PushBack(CreateMove(fromSquare, toSquare, Normal, PtNone))
				}
			}
		}
	}
}
