// Package errors はプロジェクト全体のエラーハンドリングと警告システムを提供します。
// モデル選択ハーネスの各段階（セットアップ、探索、データ取得）に対応した構造化エラーを定義します。
package errors

import (
	"fmt"
	"log"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	グローバル警告ハンドリング
//
// ===========================================================================
var (
	warningMutex   sync.Mutex
	warningHandler = func(w error) {
		// デフォルトのハンドラは標準エラー出力にログを出す
		log.Printf("scitune-Warning: %v\n", w)
	}
	// zerologロガー（循環importを避けるため遅延初期化）
	zerologWarnFunc func(warning error)
)

// SetWarningHandler はライブラリ全体の警告ハンドラを設定します。
//
// 例:
//
//	errors.SetWarningHandler(func(w error) {
//	    // 警告を無視する
//	})
func SetWarningHandler(handler func(w error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	warningHandler = handler
}

// SetZerologWarnFunc はzerolog警告関数を設定します（循環importを避けるため）。
func SetZerologWarnFunc(warnFunc func(warning error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	zerologWarnFunc = warnFunc
}

// Warn は警告を発生させます。
// zerologが利用可能な場合は構造化ログとして出力し、そうでなければ従来のハンドラを使用します。
func Warn(w error) {
	warningMutex.Lock()
	defer warningMutex.Unlock()

	if zerologWarnFunc != nil {
		zerologWarnFunc(w)
		return
	}

	if warningHandler != nil {
		warningHandler(w)
	}
}

// ===========================================================================
//
//	警告型
//
// ===========================================================================

// DataQualityWarning はデータの品質上の問題を自動的に補正した場合に発生する警告です。
// 分散ゼロの特徴量や、取得失敗時の合成データへの代替など。
type DataQualityWarning struct {
	Component string
	Detail    string
}

func (w *DataQualityWarning) Error() string {
	return fmt.Sprintf("%s: %s", w.Component, w.Detail)
}

// MarshalZerologObject はzerologのイベントに構造化された警告情報を追加します。
func (w *DataQualityWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("component", w.Component).
		Str("detail", w.Detail).
		Str("type", "DataQualityWarning")
}

// NewDataQualityWarning は新しいDataQualityWarningを作成します。
func NewDataQualityWarning(component, detail string) *DataQualityWarning {
	return &DataQualityWarning{Component: component, Detail: detail}
}

// ===========================================================================
//
//	構造化されたエラー型
//
// ===========================================================================

// ConfigurationError は探索のセットアップが不正な場合のエラーです。
// パラメータグリッドの次元に候補が無い、分割対象のデータが小さすぎる、など。
type ConfigurationError struct {
	Component string
	Reason    string
	Value     interface{}
}

func (e *ConfigurationError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("scitune: %s: invalid configuration: %s (got: %v)", e.Component, e.Reason, e.Value)
	}
	return fmt.Sprintf("scitune: %s: invalid configuration: %s", e.Component, e.Reason)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *ConfigurationError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("component", e.Component).
		Str("reason", e.Reason).
		Interface("value", e.Value).
		Str("type", "ConfigurationError")
}

// NewConfigurationError は新しいConfigurationErrorを作成し、スタックトレースを付与します。
func NewConfigurationError(component, reason string, value interface{}) error {
	err := &ConfigurationError{Component: component, Reason: reason, Value: value}
	return errors.WithStack(err)
}

// SearchEvaluationError は交差検証または最終学習でモデルの訓練が失敗した場合のエラーです。
// 再試行されず、進行中のランをそのまま打ち切ります。
type SearchEvaluationError struct {
	Phase     string // "cross_validation", "final_fit"
	Partition string // 発生したパーティションID（わかる場合）
	Err       error
}

func (e *SearchEvaluationError) Error() string {
	if e.Partition != "" {
		return fmt.Sprintf("scitune: search evaluation failed during %s on partition %s: %v", e.Phase, e.Partition, e.Err)
	}
	return fmt.Sprintf("scitune: search evaluation failed during %s: %v", e.Phase, e.Err)
}

func (e *SearchEvaluationError) Unwrap() error {
	return e.Err
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *SearchEvaluationError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("phase", e.Phase).
		Str("partition", e.Partition).
		AnErr("cause", e.Err).
		Str("type", "SearchEvaluationError")
}

// NewSearchEvaluationError は新しいSearchEvaluationErrorを作成し、スタックトレースを付与します。
func NewSearchEvaluationError(phase, partition string, err error) error {
	evalErr := &SearchEvaluationError{Phase: phase, Partition: partition, Err: err}
	return errors.WithStack(evalErr)
}

// DataAcquisitionError はリモートのデータセット取得またはパースが失敗した場合のエラーです。
// データ取得境界の内部で合成データへのフォールバックにより回復され、コアには到達しません。
type DataAcquisitionError struct {
	Source string
	Stage  string // "fetch", "parse"
	Err    error
}

func (e *DataAcquisitionError) Error() string {
	return fmt.Sprintf("scitune: failed to %s dataset from %s: %v", e.Stage, e.Source, e.Err)
}

func (e *DataAcquisitionError) Unwrap() error {
	return e.Err
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *DataAcquisitionError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("source", e.Source).
		Str("stage", e.Stage).
		AnErr("cause", e.Err).
		Str("type", "DataAcquisitionError")
}

// NewDataAcquisitionError は新しいDataAcquisitionErrorを作成し、スタックトレースを付与します。
func NewDataAcquisitionError(source, stage string, err error) error {
	acqErr := &DataAcquisitionError{Source: source, Stage: stage, Err: err}
	return errors.WithStack(acqErr)
}

// NotFittedError はモデルが未学習の状態で `Predict` や `Score` を呼び出した場合のエラーです。
type NotFittedError struct {
	ModelName string
	Method    string
}

func (e *NotFittedError) Error() string {
	return fmt.Sprintf("scitune: %s: this model is not fitted yet. Call Fit() before using %s()", e.ModelName, e.Method)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *NotFittedError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("model_name", e.ModelName).
		Str("method", e.Method).
		Str("type", "NotFittedError")
}

// NewNotFittedError は新しいNotFittedErrorを作成し、スタックトレースを付与します。
func NewNotFittedError(modelName, method string) error {
	err := &NotFittedError{ModelName: modelName, Method: method}
	return errors.WithStack(err)
}

// DimensionError は入力データの次元が期待値と異なる場合のエラーです。
type DimensionError struct {
	Op       string
	Expected int
	Got      int
	Axis     int // 0 for rows, 1 for columns/features
}

func (e *DimensionError) Error() string {
	axisName := "features"
	if e.Axis == 0 {
		axisName = "rows"
	}
	return fmt.Sprintf("scitune: %s: dimension mismatch on axis %d (%s). Expected %d, got %d", e.Op, e.Axis, axisName, e.Expected, e.Got)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *DimensionError) MarshalZerologObject(event *zerolog.Event) {
	axisName := "features"
	if e.Axis == 0 {
		axisName = "rows"
	}
	event.Str("operation", e.Op).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Int("axis", e.Axis).
		Str("axis_name", axisName).
		Str("type", "DimensionError")
}

// NewDimensionError は新しいDimensionErrorを作成し、スタックトレースを付与します。
func NewDimensionError(op string, expected, got, axis int) error {
	err := &DimensionError{Op: op, Expected: expected, Got: got, Axis: axis}
	return errors.WithStack(err)
}

// ValueError は引数の値が不適切または不正な場合に発生するエラーです。
type ValueError struct {
	Op      string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("scitune: %s: %s", e.Op, e.Message)
}

// NewValueError は新しいValueErrorを作成し、スタックトレースを付与します。
func NewValueError(op, message string) error {
	err := &ValueError{Op: op, Message: message}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	cockroachdb/errors ラッパー関数
//
// ===========================================================================

// Is はエラーが特定のターゲットエラーかどうかを判定します。
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As はエラーが特定の型にキャスト可能かどうかを判定します。
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap は既存のエラーをメッセージ付きでラップします。
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf は既存のエラーをフォーマット文字列でラップします。
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New は新しいエラーを作成します。
func New(message string) error {
	return errors.New(message)
}

// Newf は新しいフォーマット済みエラーを作成します。
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack はエラーにスタックトレースを付与します。
func WithStack(err error) error {
	return errors.WithStack(err)
}

// ===========================================================================
//
//	共通エラー変数
//
// ===========================================================================

var (
	// ErrEmptyData は空のデータが渡された場合のエラーです。
	ErrEmptyData = New("empty data")

	// ErrSingularKernel はカーネル行列が分解できない場合のエラーです。
	ErrSingularKernel = New("kernel matrix is not positive definite")
)
