// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package gen is a generated GoMock package.
package gen

import (
	context "context"
	reflect "reflect"

	constraint "github.com/pairgen/pairgen/constraint"
	param "github.com/pairgen/pairgen/param"
	gomock "go.uber.org/mock/gomock"
)

// MockCaseGenerator is a mock of CaseGenerator interface.
type MockCaseGenerator struct {
	ctrl     *gomock.Controller
	recorder *MockCaseGeneratorMockRecorder
}

// MockCaseGeneratorMockRecorder is the mock recorder for MockCaseGenerator.
type MockCaseGeneratorMockRecorder struct {
	mock *MockCaseGenerator
}

// NewMockCaseGenerator creates a new mock instance.
func NewMockCaseGenerator(ctrl *gomock.Controller) *MockCaseGenerator {
	mock := &MockCaseGenerator{ctrl: ctrl}
	mock.recorder = &MockCaseGeneratorMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockCaseGenerator) EXPECT() *MockCaseGeneratorMockRecorder {
	return m.recorder
}

// Generate mocks base method.
func (m *MockCaseGenerator) Generate(arg0 context.Context, arg1 *param.Registry, arg2 *constraint.Set) (Result, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Generate", arg0, arg1, arg2)
	ret0, _ := ret[0].(Result)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Generate indicates an expected call of Generate.
func (mr *MockCaseGeneratorMockRecorder) Generate(arg0, arg1, arg2 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Generate", reflect.TypeOf((*MockCaseGenerator)(nil).Generate), arg0, arg1, arg2)
}
