package chroma

import (
	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/fwojciec/diffnav"
)

// StyleFromPalette returns a function that maps chroma token types to
// diffnav styles based on the provided palette colors.
func StyleFromPalette(p diffnav.Palette) StyleFunc {
	return func(tt chromalib.TokenType) diffnav.Style {
		switch tt {
		case chromalib.KeywordType:
			return diffnav.Style{Foreground: p.Type, Bold: true}

		case chromalib.Keyword, chromalib.KeywordConstant, chromalib.KeywordDeclaration,
			chromalib.KeywordNamespace, chromalib.KeywordPseudo, chromalib.KeywordReserved:
			return diffnav.Style{Foreground: p.Keyword, Bold: true}

		case chromalib.Comment, chromalib.CommentHashbang, chromalib.CommentMultiline,
			chromalib.CommentPreproc, chromalib.CommentPreprocFile, chromalib.CommentSingle,
			chromalib.CommentSpecial:
			return diffnav.Style{Foreground: p.Comment}

		case chromalib.String, chromalib.StringAffix, chromalib.StringBacktick, chromalib.StringChar,
			chromalib.StringDelimiter, chromalib.StringDoc, chromalib.StringDouble,
			chromalib.StringEscape, chromalib.StringHeredoc, chromalib.StringInterpol,
			chromalib.StringOther, chromalib.StringRegex, chromalib.StringSingle,
			chromalib.StringSymbol:
			return diffnav.Style{Foreground: p.String}

		case chromalib.Number, chromalib.NumberBin, chromalib.NumberFloat, chromalib.NumberHex,
			chromalib.NumberInteger, chromalib.NumberIntegerLong, chromalib.NumberOct:
			return diffnav.Style{Foreground: p.Number}

		case chromalib.Operator, chromalib.OperatorWord:
			return diffnav.Style{Foreground: p.Operator}

		case chromalib.NameFunction, chromalib.NameFunctionMagic:
			return diffnav.Style{Foreground: p.Function}

		case chromalib.NameConstant:
			return diffnav.Style{Foreground: p.Constant}

		case chromalib.Punctuation:
			return diffnav.Style{Foreground: p.Punctuation}

		default:
			return diffnav.Style{}
		}
	}
}
