package scoring

import "fmt"

// TreeNode is one node of a regression tree. Feature < 0 marks a leaf; for
// split nodes, samples with feature value < Threshold descend Left.
type TreeNode struct {
	Feature   int     `json:"feature"`
	Threshold float64 `json:"threshold"`
	Left      int     `json:"left"`
	Right     int     `json:"right"`
	Value     float64 `json:"value"`
}

// Tree is a single regression tree stored as a flat node array rooted at 0.
type Tree struct {
	Nodes []TreeNode `json:"nodes"`
}

// Regressor is a gradient-boosted tree ensemble exported by the offline
// training pipeline. The prediction is BaseScore plus the sum of the leaf
// values reached in every tree.
type Regressor struct {
	BaseScore   float64 `json:"base_score"`
	NumFeatures int     `json:"num_features"`
	Trees       []Tree  `json:"trees"`
}

// Validate checks that every tree references only in-range nodes and features.
func (r *Regressor) Validate() error {
	if r.NumFeatures <= 0 {
		return fmt.Errorf("regressor declares %d features", r.NumFeatures)
	}
	if len(r.Trees) == 0 {
		return fmt.Errorf("regressor has no trees")
	}
	for ti, tree := range r.Trees {
		if len(tree.Nodes) == 0 {
			return fmt.Errorf("tree %d has no nodes", ti)
		}
		for ni, node := range tree.Nodes {
			if node.Feature < 0 {
				continue // leaf
			}
			if node.Feature >= r.NumFeatures {
				return fmt.Errorf("tree %d node %d splits on feature %d, regressor has %d",
					ti, ni, node.Feature, r.NumFeatures)
			}
			if node.Left >= len(tree.Nodes) || node.Right >= len(tree.Nodes) {
				return fmt.Errorf("tree %d node %d has out-of-range children", ti, ni)
			}
			// The flat export is topologically ordered: children always come
			// after their parent. Anything else would cycle during Predict.
			if node.Left <= ni || node.Right <= ni {
				return fmt.Errorf("tree %d node %d has non-advancing children", ti, ni)
			}
		}
	}
	return nil
}

// Predict evaluates the ensemble on a feature vector. The vector length must
// match NumFeatures exactly; a mismatch indicates a broken artifact bundle,
// not a recoverable input error.
func (r *Regressor) Predict(features []float64) (float64, error) {
	if len(features) != r.NumFeatures {
		return 0, fmt.Errorf("feature vector has %d dimensions, regressor expects %d",
			len(features), r.NumFeatures)
	}

	pred := r.BaseScore
	for _, tree := range r.Trees {
		idx := 0
		for {
			node := tree.Nodes[idx]
			if node.Feature < 0 {
				pred += node.Value
				break
			}
			if features[node.Feature] < node.Threshold {
				idx = node.Left
			} else {
				idx = node.Right
			}
		}
	}
	return pred, nil
}
