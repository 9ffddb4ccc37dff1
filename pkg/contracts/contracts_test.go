package contracts

import "testing"

func TestABIsExposeExpectedMethods(t *testing.T) {
	tests := map[ID][]string{
		Token: {
			MethodName, MethodSymbol, MethodDecimals, MethodTotalSupply,
			MethodBalanceOf, MethodTransfer, MethodMintTokens, MethodTimeUntilNextMint,
		},
		NFT: {
			MethodName, MethodSymbol, MethodBalanceOf, MethodOwnerOf, MethodTokenURI,
			MethodMint, MethodTotalSupply, MethodTokensOfOwner, MethodMintPrice,
		},
		Voting: {
			MethodCreatePost, MethodVoteOnPost, MethodGetPost, MethodGetRecentPosts, MethodGetUserVote,
		},
	}

	for id, methods := range tests {
		a, err := ABI(id)
		if err != nil {
			t.Fatalf("ABI(%s): %v", id, err)
		}
		for _, m := range methods {
			if _, ok := a.Methods[m]; !ok {
				t.Errorf("%s abi missing method %s", id, m)
			}
		}
	}
}

func TestNFTMintIsPayable(t *testing.T) {
	m := MustABI(NFT).Methods[MethodMint]
	if !m.IsPayable() {
		t.Fatalf("expected mint to be payable")
	}
	if MustABI(Token).Methods[MethodMintTokens].IsPayable() {
		t.Fatalf("expected mintTokens to be nonpayable")
	}
}

func TestUnknownContract(t *testing.T) {
	if _, err := ABI("bridge"); err == nil {
		t.Fatalf("expected error for unknown contract")
	}
	if ID("bridge").Valid() {
		t.Fatalf("expected bridge to be invalid")
	}
	if !Voting.Valid() {
		t.Fatalf("expected voting to be valid")
	}
}
