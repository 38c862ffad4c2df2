package preprocessing

import (
	"sort"

	"github.com/scitune/scitune/core/model"
	"github.com/scitune/scitune/pkg/errors"
)

// LabelEncoder はカテゴリラベルを連続した整数コード 0..C-1 に符号化する。
// 符号化は全単射であり、InverseTransformで元のラベルに復元できる。
type LabelEncoder struct {
	state *model.StateManager

	// ClassesSeen は昇順にソートされたラベルの一覧（コード順）
	ClassesSeen []string

	codes map[string]int
}

// NewLabelEncoder は新しいLabelEncoderを作成する
func NewLabelEncoder() *LabelEncoder {
	return &LabelEncoder{
		state: model.NewStateManager(),
	}
}

// Fit はラベル集合から符号表を構築する
func (e *LabelEncoder) Fit(labels []string) error {
	if len(labels) == 0 {
		return errors.Wrap(errors.ErrEmptyData, "LabelEncoder.Fit")
	}

	seen := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		seen[l] = struct{}{}
	}

	e.ClassesSeen = make([]string, 0, len(seen))
	for l := range seen {
		e.ClassesSeen = append(e.ClassesSeen, l)
	}
	sort.Strings(e.ClassesSeen)

	e.codes = make(map[string]int, len(e.ClassesSeen))
	for i, l := range e.ClassesSeen {
		e.codes[l] = i
	}

	e.state.SetFitted()
	return nil
}

// Transform はラベル列を整数コード列に変換する
func (e *LabelEncoder) Transform(labels []string) ([]int, error) {
	if err := e.state.RequireFitted("LabelEncoder", "Transform"); err != nil {
		return nil, err
	}

	out := make([]int, len(labels))
	for i, l := range labels {
		code, ok := e.codes[l]
		if !ok {
			return nil, errors.NewValueError("LabelEncoder.Transform", "unseen label: "+l)
		}
		out[i] = code
	}
	return out, nil
}

// FitTransform はラベル集合を学習し、同じラベル列を変換する
func (e *LabelEncoder) FitTransform(labels []string) ([]int, error) {
	if err := e.Fit(labels); err != nil {
		return nil, err
	}
	return e.Transform(labels)
}

// InverseTransform は整数コード列を元のラベル列に復元する
func (e *LabelEncoder) InverseTransform(codes []int) ([]string, error) {
	if err := e.state.RequireFitted("LabelEncoder", "InverseTransform"); err != nil {
		return nil, err
	}

	out := make([]string, len(codes))
	for i, c := range codes {
		if c < 0 || c >= len(e.ClassesSeen) {
			return nil, errors.NewValueError("LabelEncoder.InverseTransform", "code out of range")
		}
		out[i] = e.ClassesSeen[c]
	}
	return out, nil
}

// Classes は符号化されたラベルの一覧をコード順で返す
func (e *LabelEncoder) Classes() []string {
	return e.ClassesSeen
}
