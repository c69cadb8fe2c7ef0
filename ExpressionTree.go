package main

import (
	"fmt"
	"sparseSheet/contracts"
)

// ExpressionNode owns its children. Operands are leaves, operators always have both children.
type ExpressionNode struct {
	Token Token
	Left  *ExpressionNode
	Right *ExpressionNode
}

func (n *ExpressionNode) String() string {
	if n == nil {
		return ""
	}
	if n.Left == nil && n.Right == nil {
		return n.Token.String()
	}

	return "(" + n.Left.String() + n.Token.String() + n.Right.String() + ")"
}

// BuildExpressionTree folds the tokens to the left: t0 op0 t1 op1 t2 becomes ((t0 op0 t1) op1 t2).
// The sequence has to alternate operand, operator, operand.
func BuildExpressionTree(tokens []Token) (*ExpressionNode, error) {
	if len(tokens) == 0 {
		return nil, fmt.Errorf("%w: no tokens", contracts.MalformedExpressionError)
	}

	if !tokens[0].IsOperand() {
		return nil, fmt.Errorf("%w: starts with operator %s", contracts.MalformedExpressionError, tokens[0])
	}

	root := &ExpressionNode{Token: tokens[0]}

	for i := 1; i < len(tokens); i++ {
		token := tokens[i]
		if token.IsOperand() {
			return nil, fmt.Errorf("%w: operand %s follows an operand", contracts.MalformedExpressionError, token)
		}

		root = &ExpressionNode{Token: token, Left: root}

		i++
		if i >= len(tokens) {
			return nil, fmt.Errorf("%w: ends with operator %s", contracts.MalformedExpressionError, token)
		}
		if !tokens[i].IsOperand() {
			return nil, fmt.Errorf("%w: operator %s follows an operator", contracts.MalformedExpressionError, tokens[i])
		}

		root.Right = &ExpressionNode{Token: tokens[i]}
	}

	return root, nil
}
